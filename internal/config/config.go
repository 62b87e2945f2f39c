// Package config loads server settings from the environment, with an
// optional .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/mmynk/tripmate/internal/lifecycle"
	"github.com/mmynk/tripmate/internal/places"
)

const devJWTSecret = "tripmate-dev-secret"

// Config holds everything main needs to wire the server.
type Config struct {
	Port   int
	DBPath string

	JWTSecret string
	TokenTTL  time.Duration

	PlacesAPIKey  string
	PlacesBaseURL string

	// NavDelay is the pause clients take before opening a group map.
	NavDelay time.Duration
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("Failed to load .env file", "error", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		DBPath:        getEnv("DB_PATH", "./data/tripmate.db"),
		JWTSecret:     getEnv("JWT_SECRET", devJWTSecret),
		PlacesAPIKey:  os.Getenv("PLACES_API_KEY"),
		PlacesBaseURL: getEnv("PLACES_BASE_URL", places.DefaultBaseURL),
	}

	var err error
	if cfg.Port, err = strconv.Atoi(getEnv("PORT", "8080")); err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}
	if cfg.TokenTTL, err = time.ParseDuration(getEnv("TOKEN_TTL", "72h")); err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}
	if cfg.NavDelay, err = time.ParseDuration(getEnv("NAV_DELAY", lifecycle.DefaultNavigationDelay.String())); err != nil {
		return nil, fmt.Errorf("invalid NAV_DELAY: %w", err)
	}

	if cfg.JWTSecret == devJWTSecret {
		slog.Warn("JWT_SECRET not set, using the development secret")
	}
	return cfg, nil
}

// Addr is the listen address for Port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
