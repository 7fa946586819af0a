package generation

import (
	"context"
	"errors"
	"strings"

	"github.com/cardforge/cardforge/internal/assets"
	"github.com/cardforge/cardforge/internal/schema"
	"github.com/cardforge/cardforge/internal/sheet"
	"github.com/cardforge/cardforge/pkg/logger"
	"github.com/cardforge/cardforge/pkg/metrics"
)

// Service turns a prompt into a validated sheet: provider call, asset completion
// on the raw candidate, then validation. Nothing reaches a caller unvalidated.
type Service struct {
	client Client
}

func NewService(client Client) *Service {
	return &Service{client: client}
}

func (s *Service) Generate(ctx context.Context, prompt string) (*sheet.Sheet, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		metrics.GenerationRequests.WithLabelValues("empty_prompt").Inc()
		return nil, ErrEmptyPrompt
	}

	candidate, err := s.client.Generate(ctx, prompt)
	if err != nil {
		if errors.Is(err, ErrEmptyPrompt) {
			metrics.GenerationRequests.WithLabelValues("empty_prompt").Inc()
			return nil, err
		}
		metrics.GenerationRequests.WithLabelValues("provider_error").Inc()
		logger.Warnf("generation: provider call failed: %v", err)
		var gerr *Error
		if !errors.As(err, &gerr) {
			err = &Error{Message: "provider request failed", Err: err}
		}
		return nil, err
	}

	assets.Complete(candidate)

	sh, err := schema.Validate(candidate)
	if err != nil {
		metrics.GenerationRequests.WithLabelValues("invalid_sheet").Inc()
		logger.Warnf("generation: rejected provider output: %v", err)
		return nil, err
	}
	metrics.GenerationRequests.WithLabelValues("ok").Inc()
	logger.Infof("generation: %s (%s, %s)", sh.Name, sh.Race, sh.ArchetypeID)
	return sh, nil
}
