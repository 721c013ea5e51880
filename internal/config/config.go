package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr      string
	LogLevel      slog.Level
	Language      string
	LLMModel      string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	LLMTimeout    time.Duration
	ForceMock     bool
}

// Load reads the environment, after merging an optional .env file from the
// working directory. Variables already set in the environment win.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	c := Config{
		HTTPAddr:      envOr("HTTP_ADDR", ":8787"),
		Language:      strings.ToLower(envOr("FORTUNE_LANG", "tr")),
		LLMModel:      envOr("LLM_MODEL", "gpt-4o-mini"),
		OpenAIAPIKey:  strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIBaseURL: envOr("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		LLMTimeout:    20 * time.Second,
		ForceMock:     parseFlag(os.Getenv("FORCE_MOCK")),
	}

	if v := os.Getenv("LLM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LLM_TIMEOUT %q: %w", v, err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("invalid LLM_TIMEOUT %q: must be positive", v)
		}
		c.LLMTimeout = d
	}

	level, err := parseLogLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	return c, nil
}

// OpenAIConfigured reports whether a provider credential is present.
func (c Config) OpenAIConfigured() bool {
	return c.OpenAIAPIKey != ""
}

// MockMode is true when FORCE_MOCK is set or no credential is available.
func (c Config) MockMode() bool {
	return c.ForceMock || !c.OpenAIConfigured()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseFlag(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
