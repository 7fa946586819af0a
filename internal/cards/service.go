package cards

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cardforge/cardforge/internal/shareid"
	"github.com/cardforge/cardforge/internal/sheet"
)

// Service implements the share and retrieve flows on top of a Repository.
type Service struct {
	repo  Repository
	now   func() time.Time
	newID func() (string, error)
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now, newID: shareid.New}
}

// Share stores a new card for s and returns its public id. Sharing the same sheet
// twice creates two records.
func (s *Service) Share(ctx context.Context, sh sheet.Sheet, prompt string) (string, error) {
	id, err := s.newID()
	if err != nil {
		return "", fmt.Errorf("mint share id: %w", err)
	}
	card := &sheet.SharedCard{
		Sheet:     sh.Clone(),
		Prompt:    strings.TrimSpace(prompt),
		CreatedAt: s.now().UnixMilli(),
	}
	if err := s.repo.Put(ctx, id, card); err != nil {
		return "", err
	}
	return id, nil
}

// Get loads the card stored under id. Ids that cannot have been minted are
// reported as ErrNotFound without touching storage.
func (s *Service) Get(ctx context.Context, id string) (*sheet.SharedCard, error) {
	if !shareid.Valid(id) {
		return nil, ErrNotFound
	}
	return s.repo.Get(ctx, id)
}
