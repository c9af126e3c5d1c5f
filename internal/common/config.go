package common

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Database DatabaseConfig
	Fetcher  FetcherConfig
	LLM      LLMConfig
	Limits   LimitsConfig
}

// DatabaseConfig holds counter-store configuration. Backend selects which
// store implementation cmd wiring constructs: "postgres", "sqlite" or "redis".
type DatabaseConfig struct {
	Backend     string
	DSN         string
	SQLitePath  string
	RedisAddr   string
	DialTimeout time.Duration
}

// FetcherConfig holds source-fetcher configuration.
type FetcherConfig struct {
	ReaderBaseURL  string
	Timeout        time.Duration
	AllowedDomains []string
}

// LLMConfig holds model-provider configuration.
type LLMConfig struct {
	GeminiAPIKey    string
	GeminiModel     string
	AnthropicAPIKey string
	ClaudeModel     string
	Timeout         time.Duration
	MaxContentChars int
}

// LimitsConfig holds the three extraction quota thresholds.
type LimitsConfig struct {
	PerUserDaily   int
	PerUserMonthly int
	GlobalMonthly  int
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Backend:     getEnv("COUNTER_BACKEND", "sqlite"),
			DSN:         getEnv("DB_URL", ""),
			SQLitePath:  getEnv("SQLITE_PATH", "churnpilot.db"),
			RedisAddr:   getEnv("REDIS_ADDR", ""),
			DialTimeout: getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
		},
		Fetcher: FetcherConfig{
			ReaderBaseURL:  getEnv("READER_BASE_URL", "https://r.jina.ai/"),
			Timeout:        getEnvAsDuration("FETCH_TIMEOUT", 60*time.Second),
			AllowedDomains: getEnvAsList("FETCH_ALLOWED_DOMAINS", nil),
		},
		LLM: LLMConfig{
			GeminiAPIKey:    getEnv("GEMINI_API_KEY", os.Getenv("GOOGLE_API_KEY")),
			GeminiModel:     getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
			ClaudeModel:     getEnv("CLAUDE_MODEL", "claude-sonnet-4-20250514"),
			Timeout:         getEnvAsDuration("LLM_TIMEOUT", 60*time.Second),
			MaxContentChars: getEnvAsInt("LLM_MAX_CONTENT_CHARS", 15000),
		},
		Limits: LimitsConfig{
			PerUserDaily:   getEnvAsInt("AI_DAILY_LIMIT", 5),
			PerUserMonthly: getEnvAsInt("AI_MONTHLY_LIMIT", 10),
			GlobalMonthly:  getEnvAsInt("AI_GLOBAL_MONTHLY_LIMIT", 1000),
		},
	}
}

// Validate validates the loaded configuration.
func (c *Config) Validate() error {
	if c.LLM.GeminiAPIKey == "" && c.LLM.AnthropicAPIKey == "" {
		return WrapError(ErrInvalidInput, "GEMINI_API_KEY or ANTHROPIC_API_KEY is required")
	}
	if c.Database.Backend == "postgres" && c.Database.DSN == "" {
		return WrapError(ErrInvalidInput, "DB_URL is required for the postgres backend")
	}
	if c.Database.Backend == "redis" && c.Database.RedisAddr == "" {
		return WrapError(ErrInvalidInput, "REDIS_ADDR is required for the redis backend")
	}
	return nil
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
