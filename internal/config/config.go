// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Provider names accepted by AI_PROVIDER.
var providerNames = []string{"groq", "openai", "mistral", "claude", "gemini"}

// Default models per provider, used when <PROVIDER>_MODEL is unset.
var defaultModels = map[string]string{
	"groq":    "llama-3.3-70b-versatile",
	"openai":  "gpt-4o-mini",
	"mistral": "mistral-large-latest",
	"claude":  "claude-sonnet-4-6",
	"gemini":  "gemini-2.5-flash",
}

// Provider holds the settings of a single language-model provider.
type Provider struct {
	APIKey  string
	Model   string
	BaseURL string // empty uses the provider's public endpoint
}

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host     string
	Port     string
	Env      string // "development", "production", "testing"
	LogLevel string

	// PostgreSQL connection
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Valkey (Redis-compatible cache). An empty host disables caching.
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// Comma-separated origins allowed by CORS.
	CORSAllowedOrigins string

	// AI provider settings
	AIProvider string
	Providers  map[string]Provider

	// S3-compatible storage for published exports. Publishing is disabled
	// unless endpoint, bucket and credentials are all set.
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3PublicURL string
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. A .env file in the working directory
// is loaded first if present; variables already set in the environment win.
// Returns an error if critical values are missing in production mode.
func Load() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded .env file")
	}

	cfg := &Config{
		Host:     envOrDefault("APP_HOST", "0.0.0.0"),
		Port:     envOrDefault("APP_PORT", "5000"),
		Env:      envOrDefault("APP_ENV", "development"),
		LogLevel: envOrDefault("LOG_LEVEL", "info"),

		DBHost:     envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "flexiui"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "flexiui"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		CORSAllowedOrigins: envOrDefault("CORS_ALLOWED_ORIGINS", "*"),

		AIProvider: strings.ToLower(envOrDefault("AI_PROVIDER", "groq")),
		Providers:  make(map[string]Provider, len(providerNames)),

		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    envOrDefault("S3_REGION", "us-east-1"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Bucket:    os.Getenv("S3_BUCKET"),
		S3PublicURL: os.Getenv("S3_PUBLIC_URL"),
	}

	for _, name := range providerNames {
		prefix := strings.ToUpper(name)
		cfg.Providers[name] = Provider{
			APIKey:  os.Getenv(prefix + "_API_KEY"),
			Model:   envOrDefault(prefix+"_MODEL", defaultModels[name]),
			BaseURL: os.Getenv(prefix + "_BASE_URL"),
		}
	}

	if _, ok := cfg.Providers[cfg.AIProvider]; !ok {
		return nil, fmt.Errorf("AI_PROVIDER %q is not one of %s", cfg.AIProvider, strings.Join(providerNames, ", "))
	}

	if cfg.Env == "production" {
		if cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
		if cfg.Providers[cfg.AIProvider].APIKey == "" {
			return nil, fmt.Errorf("%s_API_KEY must be set in production", strings.ToUpper(cfg.AIProvider))
		}
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// ValkeyEnabled reports whether a Valkey host is configured.
func (c *Config) ValkeyEnabled() bool {
	return c.ValkeyHost != ""
}

// StorageEnabled reports whether S3 publishing has everything it needs.
func (c *Config) StorageEnabled() bool {
	return c.S3Endpoint != "" && c.S3Bucket != "" && c.S3AccessKey != "" && c.S3SecretKey != ""
}

// CORSOrigins splits CORSAllowedOrigins into a trimmed list, skipping blanks.
func (c *Config) CORSOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
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
	}
	return slog.LevelInfo
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
