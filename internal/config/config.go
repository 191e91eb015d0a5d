package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Rate limiting
	RateLimitMax int    // Requests per minute per IP
	RedisURL     string // Optional shared limiter storage, e.g. "redis://localhost:6379/0"

	// OIDC bearer-token guard for analytics endpoints (disabled when issuer is empty)
	OIDCIssuer   string
	OIDCClientID string

	// Chat
	ConfigFile     string // YAML file with extra topics and suggestions
	MaxQueryLength int    // Maximum query length in runes accepted over HTTP

	// Jobs
	AnalyticsLogInterval time.Duration // 0 disables the periodic analytics log

	// Logging
	LogLevel string // debug, info, warn, error

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "SmartEduBot"
	SiteTagline string // env: SITE_TAGLINE, default: "Your Intelligent College Assistant"
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:                  getEnv("ENV", "development"),
		ServerAddr:           getEnv("SERVER_ADDR", ":3000"),
		BaseURL:              getEnv("BASE_URL", "http://localhost:3000"),
		CORSOrigins:          getEnv("CORS_ORIGINS", ""),
		RateLimitMax:         getEnvInt("RATE_LIMIT_MAX", 100),
		RedisURL:             getEnv("REDIS_URL", ""),
		OIDCIssuer:           getEnv("OIDC_ISSUER", ""),
		OIDCClientID:         getEnv("OIDC_CLIENT_ID", ""),
		ConfigFile:           getEnv("CONFIG_FILE", "config.yaml"),
		MaxQueryLength:       getEnvInt("MAX_QUERY_LENGTH", 500),
		AnalyticsLogInterval: getEnvDuration("ANALYTICS_LOG_INTERVAL", 0),
		LogLevel:             getEnv("LOG_LEVEL", "info"),

		SiteTitle:   getEnv("SITE_TITLE", "SmartEduBot"),
		SiteTagline: getEnv("SITE_TAGLINE", "Your Intelligent College Assistant"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("ignoring invalid integer environment variable", "key", key, "value", value)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("ignoring invalid duration environment variable", "key", key, "value", value)
		return fallback
	}
	return d
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsOIDCEnabled returns true if analytics endpoints require a bearer token.
func (c *Config) IsOIDCEnabled() bool {
	return c.OIDCIssuer != ""
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
