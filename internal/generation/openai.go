package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cardforge/cardforge/internal/schema"
	"github.com/cardforge/cardforge/pkg/logger"
)

const (
	DefaultResponsesURL = "https://api.openai.com/v1/responses"
	DefaultModel        = "gpt-4.1-mini"
	DefaultTimeout      = 60 * time.Second

	maxErrorBody = 64 << 10
)

// Client produces one raw sheet candidate for a prompt. The candidate is
// untrusted until it passes the validator.
type Client interface {
	Generate(ctx context.Context, prompt string) (map[string]any, error)
}

// OpenAIConfig configures the Responses endpoint and HTTP behavior.
type OpenAIConfig struct {
	APIKey       string
	Model        string
	ResponsesURL string
	HTTPClient   *http.Client
}

// OpenAIClient calls the OpenAI Responses API with the sheet schema as a strict
// structured-output format. It makes exactly one request per call.
type OpenAIClient struct {
	cfg OpenAIConfig
}

func NewOpenAIClient(cfg OpenAIConfig) *OpenAIClient {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	if strings.TrimSpace(cfg.ResponsesURL) == "" {
		cfg.ResponsesURL = DefaultResponsesURL
	}
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = DefaultModel
	}
	logger.RegisterSecret(cfg.APIKey)
	return &OpenAIClient{cfg: cfg}
}

type responsesRequest struct {
	Model        string         `json:"model"`
	Instructions string         `json:"instructions"`
	Input        []inputMessage `json:"input"`
	Text         textOptions    `json:"text"`
}

type inputMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type textOptions struct {
	Format textFormat `json:"format"`
}

type textFormat struct {
	Type   string          `json:"type"`
	Name   string          `json:"name"`
	Strict bool            `json:"strict"`
	Schema json.RawMessage `json:"schema"`
}

type responsesPayload struct {
	OutputText string `json:"output_text"`
	Output     []struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"output"`
}

func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (map[string]any, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}

	sch, err := schema.JSON()
	if err != nil {
		return nil, fmt.Errorf("encode sheet schema: %w", err)
	}
	body, err := json.Marshal(responsesRequest{
		Model:        c.cfg.Model,
		Instructions: Instructions,
		Input:        []inputMessage{{Role: "user", Content: UserPrefix + prompt}},
		Text: textOptions{Format: textFormat{
			Type:   "json_schema",
			Name:   schema.Name,
			Strict: true,
			Schema: sch,
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal generation request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.ResponsesURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	// the key travels only in this header; errors never include request headers
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	res, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, &Error{Message: "provider request failed", Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		return nil, &Error{Status: res.StatusCode, Message: providerMessage(raw)}
	}

	var payload responsesPayload
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, &Error{Status: res.StatusCode, Message: "provider response is not valid JSON", Err: err}
	}
	out := outputText(payload)
	if out == "" {
		return nil, &Error{Status: res.StatusCode, Message: "provider response has no output text"}
	}

	dec := json.NewDecoder(strings.NewReader(out))
	dec.UseNumber()
	var candidate map[string]any
	if err := dec.Decode(&candidate); err != nil {
		return nil, &Error{Status: res.StatusCode, Message: "provider output is not a JSON object", Err: err}
	}
	return candidate, nil
}

// providerMessage extracts error.message from a provider error body.
func providerMessage(raw []byte) string {
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || strings.TrimSpace(body.Error.Message) == "" {
		return "unknown error"
	}
	return body.Error.Message
}

func outputText(p responsesPayload) string {
	if s := strings.TrimSpace(p.OutputText); s != "" {
		return s
	}
	for _, item := range p.Output {
		for _, content := range item.Content {
			if s := strings.TrimSpace(content.Text); s != "" {
				return s
			}
		}
	}
	return ""
}
