package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server       ServerConfig
	Logging      LogConfig
	RateLimit    RateLimitConfig
	Search       SearchConfig
	Suggest      SuggestConfig
	Stream       StreamConfig
	Autocomplete AutocompleteConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	// CORSOrigins restricts browser callers; empty allows any origin
	CORSOrigins []string `envconfig:"CORS_ORIGINS"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// SearchConfig selects the engine catalog and initial preferences.
type SearchConfig struct {
	DefaultEngine      string `envconfig:"SEARCH_DEFAULT_ENGINE" default:""`
	EnginesFile        string `envconfig:"SEARCH_ENGINES_FILE" default:""`
	SuggestionsEnabled bool   `envconfig:"SEARCH_SUGGESTIONS" default:"false"`
}

// SuggestConfig tunes the outbound suggestion client.
type SuggestConfig struct {
	Timeout           time.Duration `envconfig:"SUGGEST_TIMEOUT" default:"3s"`
	RequestsPerSecond float64       `envconfig:"SUGGEST_RPS" default:"10"`
	RetryMax          int           `envconfig:"SUGGEST_RETRY_MAX" default:"2"`
	MaxResults        int           `envconfig:"SUGGEST_MAX_RESULTS" default:"5"`
	BreakerThreshold  int           `envconfig:"SUGGEST_BREAKER_THRESHOLD" default:"5"`
	BreakerCooldown   time.Duration `envconfig:"SUGGEST_BREAKER_COOLDOWN" default:"30s"`
}

// StreamConfig holds WebSocket snapshot stream configuration.
type StreamConfig struct {
	Buffer int `envconfig:"WS_BUFFER" default:"16"`
}

// AutocompleteConfig seeds the custom autocomplete list.
type AutocompleteConfig struct {
	Domains []string `envconfig:"AUTOCOMPLETE_DOMAINS"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8000",
			Host: "0.0.0.0",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
		Search: SearchConfig{
			SuggestionsEnabled: false,
		},
		Suggest: SuggestConfig{
			Timeout:           3 * time.Second,
			RequestsPerSecond: 10,
			RetryMax:          2,
			MaxResults:        5,
			BreakerThreshold:  5,
			BreakerCooldown:   30 * time.Second,
		},
		Stream: StreamConfig{
			Buffer: 16,
		},
	}
}
