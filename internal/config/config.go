package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const devSecret = "dev-secret"

// Config is loaded from the environment once at startup and treated as
// immutable afterwards.
type Config struct {
	Env            string        `env:"APP_ENV" envDefault:"development"`
	Addr           string        `env:"SERVER_ADDR" envDefault:"0.0.0.0:8080"`
	DatabaseURL    string        `env:"DATABASE_URL"`
	JWTSecret      string        `env:"JWT_SECRET" envDefault:"dev-secret"`
	TokenTTL       time.Duration `env:"TOKEN_TTL" envDefault:"8h"`
	AllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	// The fallback secret is for local development only.
	if cfg.IsProduction() && (cfg.JWTSecret == "" || cfg.JWTSecret == devSecret) {
		return nil, errors.New("JWT_SECRET must be set explicitly in production")
	}

	return cfg, nil
}
