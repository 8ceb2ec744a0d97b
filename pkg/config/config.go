package config

import (
	"fmt"
	"strings"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
)

// Environment name constants used in ENVIRONMENT config field.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

// Config holds all configuration for the application
type Config struct {
	// MongoDB
	MongoURL      string `conf:"default:mongodb://localhost:27017,env:MONGO_URL,noprint"`
	MongoDatabase string `conf:"default:api_db,env:MONGO_DATABASE"`

	// HTTP
	HTTPAddr string `conf:"default::8080,env:HTTP_ADDR"`

	// Application
	LogLevel    string `conf:"default:info,env:LOG_LEVEL"`
	Environment string `conf:"default:development,enum:development|testing|production,env:ENVIRONMENT"`

	// Authentication — HTTP Basic credentials plus an optional static API key.
	ServiceUser     string `conf:"default:service,env:SERVICE_USER"`
	ServicePassword string `conf:"default:dev-password,env:SERVICE_PWD,noprint"`
	APIKey          string `conf:"env:API_KEY,noprint"`

	// CORS — comma-separated list of allowed origins; use * to allow all (dev only)
	CORSAllowedOrigins string `conf:"default:*,env:CORS_ALLOWED_ORIGINS"`

	// Observability
	ServiceName    string `conf:"default:inventory,env:SERVICE_NAME"`
	ServiceVersion string `conf:"default:dev,env:SERVICE_VERSION"`
	OtelEndpoint   string `conf:"env:OTEL_ENDPOINT"`
	SentryDSN      string `conf:"env:SENTRY_DSN,noprint"`
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	var cfg Config
	_ = godotenv.Load()
	if _, err := conf.Parse("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// ValidateForProduction enforces security requirements when ENVIRONMENT=production.
// Returns an error if any critical settings are missing or unsafe.
// No-ops for non-production environments.
func ValidateForProduction(cfg *Config) error {
	if cfg.Environment != EnvProduction {
		return nil
	}

	var errs []string

	if cfg.ServicePassword == "" || cfg.ServicePassword == "dev-password" {
		errs = append(errs, "SERVICE_PWD must be set to a non-default value; generate with: openssl rand -base64 24")
	}

	if cfg.ServicePassword != "" && cfg.ServicePassword != "dev-password" && len(cfg.ServicePassword) < 12 {
		errs = append(errs, fmt.Sprintf("SERVICE_PWD must be at least 12 bytes (got %d)", len(cfg.ServicePassword)))
	}

	if cfg.LogLevel == "debug" {
		errs = append(errs, "LOG_LEVEL must not be 'debug' in production (may leak sensitive data)")
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("production config validation failed: %s", strings.Join(errs, "; "))
}
