package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application. The Library Service
// base URL is the only state shared process-wide; it is read once at startup
// and never mutated.
type Config struct {
	APIBaseURL    string
	APITimeout    time.Duration
	ListenAddr    string
	SessionSecret string
	LogoPath      string
}

// New loads configuration from environment variables.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		APIBaseURL:    os.Getenv("API_BASE_URL"),
		APITimeout:    10 * time.Second,
		ListenAddr:    os.Getenv("LISTEN_ADDR"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		LogoPath:      os.Getenv("LOGO_PATH"),
	}

	if raw := os.Getenv("API_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid API_TIMEOUT %q: %w", raw, err)
		}
		cfg.APITimeout = d
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.LogoPath == "" {
		cfg.LogoPath = "web/static/logo.svg"
	}

	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("required environment variable API_BASE_URL is not set")
	}
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("required environment variable SESSION_SECRET is not set")
	}

	return cfg, nil
}
