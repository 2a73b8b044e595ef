package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the cn command.
type Config struct {
	// Prefix is the Tailwind prefix option, e.g. "tw-".
	Prefix string

	// ExtensionFile is an optional YAML file with extra class groups.
	ExtensionFile string

	// LogFormat is text or json.
	LogFormat string
}

// Load reads configuration from environment variables.
// It will also load from a .env file if present.
func Load() (*Config, error) {
	// Load .env file (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		Prefix:        getEnv("CN_PREFIX", ""),
		ExtensionFile: getEnv("CN_EXTENSION_FILE", ""),
		LogFormat:     getEnv("CN_LOG_FORMAT", "text"),
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("CN_LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a fallback default.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
