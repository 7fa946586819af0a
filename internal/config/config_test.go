package config

import (
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test-123456")
	t.Setenv("REDIS_HOST", "localhost")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("MONGODB_URI", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.OpenAI.Model != "gpt-4.1-mini" || cfg.OpenAI.Timeout != 60*time.Second {
		t.Fatalf("unexpected openai defaults: %+v", cfg.OpenAI)
	}
	if cfg.Redis.Addr() != "localhost:6379" {
		t.Fatalf("unexpected redis addr %q", cfg.Redis.Addr())
	}
	if cfg.RateLimit.RPS != 2.5 || cfg.RateLimit.Window != time.Minute {
		t.Fatalf("unexpected rate limit config: %+v", cfg.RateLimit)
	}
	if cfg.MongoDB.URI != "" {
		t.Fatalf("mongo should be optional, got %q", cfg.MongoDB.URI)
	}
}

func TestLoadConfigRequiresAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	if _, err := LoadConfig(); err != ErrMissingAPIKey {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}
