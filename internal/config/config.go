package config

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	OpenAI    OpenAIConfig
	Redis     RedisConfig
	MongoDB   MongoDBConfig
	RateLimit RateLimitConfig
	LogLevel  string
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type OpenAIConfig struct {
	APIKey       string
	Model        string
	ResponsesURL string
	Timeout      time.Duration
}

// RedisConfig describes the primary card store. An empty Host disables it.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func (r RedisConfig) Addr() string { return r.Host + ":" + r.Port }

// MongoDBConfig describes the optional durable tier. An empty URI disables it.
type MongoDBConfig struct {
	URI        string
	Database   string
	Collection string
	Timeout    time.Duration
}

type RateLimitConfig struct {
	Enabled  bool
	RPS      float64
	Burst    int
	UseRedis bool
	Window   time.Duration
}

// ErrMissingAPIKey is returned when generation has no provider credential.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY is required")

// LoadConfig loads configuration from environment variables and .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "5001")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_ENVIRONMENT", "development")
	v.SetDefault("OPENAI_MODEL", "gpt-4.1-mini")
	v.SetDefault("OPENAI_RESPONSES_URL", "https://api.openai.com/v1/responses")
	v.SetDefault("OPENAI_TIMEOUT", 60)
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("MONGODB_DATABASE", "cardforge")
	v.SetDefault("MONGODB_COLLECTION", "cards")
	v.SetDefault("MONGODB_TIMEOUT", 10)
	v.SetDefault("RATE_LIMIT_ENABLED", true)
	v.SetDefault("RATE_LIMIT_RPS", 0.2)
	v.SetDefault("RATE_LIMIT_BURST", 3)
	v.SetDefault("RATE_LIMIT_USE_REDIS", false)
	v.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 60)
	v.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetString("SERVER_PORT"),
			Host:         v.GetString("SERVER_HOST"),
			Environment:  v.GetString("SERVER_ENVIRONMENT"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 90 * time.Second,
		},
		OpenAI: OpenAIConfig{
			APIKey:       v.GetString("OPENAI_API_KEY"),
			Model:        v.GetString("OPENAI_MODEL"),
			ResponsesURL: v.GetString("OPENAI_RESPONSES_URL"),
			Timeout:      time.Duration(v.GetInt("OPENAI_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		MongoDB: MongoDBConfig{
			URI:        v.GetString("MONGODB_URI"),
			Database:   v.GetString("MONGODB_DATABASE"),
			Collection: v.GetString("MONGODB_COLLECTION"),
			Timeout:    time.Duration(v.GetInt("MONGODB_TIMEOUT")) * time.Second,
		},
		RateLimit: RateLimitConfig{
			Enabled:  v.GetBool("RATE_LIMIT_ENABLED"),
			RPS:      v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:    v.GetInt("RATE_LIMIT_BURST"),
			UseRedis: v.GetBool("RATE_LIMIT_USE_REDIS"),
			Window:   time.Duration(v.GetInt("RATE_LIMIT_WINDOW_SECONDS")) * time.Second,
		},
		LogLevel: v.GetString("LOG_LEVEL"),
	}

	if cfg.OpenAI.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return cfg, nil
}
