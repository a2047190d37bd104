package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Remote API
	APIURL            string
	APIToken          string
	UserID            string
	HTTPTimeout       time.Duration
	RequestsPerSecond float64

	// Local state
	DBPath string

	Env string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	timeoutSec, err := strconv.Atoi(getEnv("HTTP_TIMEOUT_SECONDS", "15"))
	if err != nil {
		return nil, fmt.Errorf("HTTP_TIMEOUT_SECONDS must be an integer: %w", err)
	}

	rps, err := strconv.ParseFloat(getEnv("REQUESTS_PER_SECOND", "10"), 64)
	if err != nil {
		return nil, fmt.Errorf("REQUESTS_PER_SECOND must be a number: %w", err)
	}

	cfg := &Config{
		APIURL:            getEnv("API_URL", ""),
		APIToken:          getEnv("API_TOKEN", ""),
		UserID:            getEnv("USER_ID", ""),
		HTTPTimeout:       time.Duration(timeoutSec) * time.Second,
		RequestsPerSecond: rps,
		DBPath:            getEnv("DB_PATH", defaultDBPath()),
		Env:               getEnv("ENV", "development"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("API_URL is required")
	}
	return nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "budgetview.db"
	}
	return filepath.Join(home, ".budgetview", "budgetview.db")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
