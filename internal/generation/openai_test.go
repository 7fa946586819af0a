package generation

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cardforge/cardforge/internal/schema"
	"github.com/cardforge/cardforge/internal/sheet"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// nordCandidate is a provider answer for a Nord that leaves the asset ids out.
func nordCandidate(t *testing.T) string {
	t.Helper()
	s := sheet.Default()
	s.Name = "Hrolf Ice-Veined"
	s.Race = "Nord"
	s.ArchetypeID = "sk_nord_mercenary"
	b, err := json.Marshal(s)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	delete(m, "frame_id")
	delete(m, "portrait_id")
	b, err = json.Marshal(m)
	require.NoError(t, err)
	return string(b)
}

func respondWith(t *testing.T, status int, body any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		require.NoError(t, json.NewEncoder(w).Encode(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenAIClient_SendsStructuredRequest(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "Bearer sk-test-abcdef", r.Header.Get("Authorization"))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"output_text": ` + mustQuote(t, nordCandidate(t)) + `}`))
	}))
	defer srv.Close()

	c := NewOpenAIClient(OpenAIConfig{APIKey: "sk-test-abcdef", ResponsesURL: srv.URL})
	candidate, err := c.Generate(context.Background(), "  A Nord warrior seeking glory in battle ")
	require.NoError(t, err)
	require.Equal(t, "Hrolf Ice-Veined", candidate["name"])
	// numbers are kept exact for the validator
	require.Equal(t, json.Number("8"), candidate["stats"].(map[string]any)["might"])

	require.Equal(t, DefaultModel, got["model"])
	require.Equal(t, Instructions, got["instructions"])
	input := got["input"].([]any)[0].(map[string]any)
	require.Equal(t, "user", input["role"])
	require.Equal(t, UserPrefix+"A Nord warrior seeking glory in battle", input["content"])

	format := got["text"].(map[string]any)["format"].(map[string]any)
	require.Equal(t, "json_schema", format["type"])
	require.Equal(t, schema.Name, format["name"])
	require.Equal(t, true, format["strict"])
	sch := format["schema"].(map[string]any)
	require.Equal(t, "object", sch["type"])
	require.Equal(t, false, sch["additionalProperties"])
}

func mustQuote(t *testing.T, s string) string {
	t.Helper()
	b, err := json.Marshal(s)
	require.NoError(t, err)
	return string(b)
}

func TestOpenAIClient_ReadsOutputContentFallback(t *testing.T) {
	srv := respondWith(t, http.StatusOK, map[string]any{
		"output": []any{
			map[string]any{"content": []any{}},
			map[string]any{"content": []any{
				map[string]any{"type": "output_text", "text": nordCandidate(t)},
			}},
		},
	})
	c := NewOpenAIClient(OpenAIConfig{APIKey: "sk-test-abcdef", ResponsesURL: srv.URL})
	candidate, err := c.Generate(context.Background(), "a nord")
	require.NoError(t, err)
	require.Equal(t, "Nord", candidate["race"])
}

func TestOpenAIClient_EmptyPromptMakesNoRequest(t *testing.T) {
	called := false
	c := NewOpenAIClient(OpenAIConfig{
		APIKey: "sk-test-abcdef",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
			called = true
			return nil, errors.New("unexpected")
		})},
	})
	_, err := c.Generate(context.Background(), " \n\t ")
	require.ErrorIs(t, err, ErrEmptyPrompt)
	require.False(t, called)
}

func TestOpenAIClient_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    any
		wantMsg string
	}{
		{
			name:    "provider message is passed through",
			status:  http.StatusTooManyRequests,
			body:    map[string]any{"error": map[string]any{"message": "Rate limit reached for gpt-4.1-mini"}},
			wantMsg: "Rate limit reached for gpt-4.1-mini",
		},
		{
			name:    "no provider message",
			status:  http.StatusInternalServerError,
			body:    map[string]any{"detail": "oops"},
			wantMsg: "unknown error",
		},
		{
			name:    "output text is not JSON",
			status:  http.StatusOK,
			body:    map[string]any{"output_text": "Here is your character: Hrolf"},
			wantMsg: "provider output is not a JSON object",
		},
		{
			name:    "output text is a JSON array",
			status:  http.StatusOK,
			body:    map[string]any{"output_text": "[1, 2, 3]"},
			wantMsg: "provider output is not a JSON object",
		},
		{
			name:    "no output at all",
			status:  http.StatusOK,
			body:    map[string]any{"output": []any{}},
			wantMsg: "provider response has no output text",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := respondWith(t, tt.status, tt.body)
			c := NewOpenAIClient(OpenAIConfig{APIKey: "sk-test-abcdef", ResponsesURL: srv.URL})
			_, err := c.Generate(context.Background(), "a nord")
			var gerr *Error
			require.True(t, errors.As(err, &gerr))
			require.Equal(t, tt.status, gerr.Status)
			require.Equal(t, tt.wantMsg, gerr.Message)
			require.NotContains(t, err.Error(), "sk-test-abcdef")
		})
	}
}

func TestOpenAIClient_TransportError(t *testing.T) {
	c := NewOpenAIClient(OpenAIConfig{
		APIKey: "sk-test-abcdef",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
			return nil, errors.New("dial tcp: connection refused")
		})},
	})
	_, err := c.Generate(context.Background(), "a nord")
	var gerr *Error
	require.True(t, errors.As(err, &gerr))
	require.Zero(t, gerr.Status)
	require.Contains(t, err.Error(), "connection refused")
	require.False(t, strings.Contains(err.Error(), "sk-test-abcdef"))
}

func TestErrorMessageFallback(t *testing.T) {
	require.Equal(t, "generation failed: unknown error", (&Error{}).Error())
	require.Equal(t, "generation failed (provider status 401): Incorrect API key provided",
		(&Error{Status: 401, Message: "Incorrect API key provided"}).Error())
}
