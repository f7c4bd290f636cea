package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	App      AppConfig
	Model    ModelConfig
	Snapshot SnapshotConfig
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port string
}

// AppConfig holds application-specific settings
type AppConfig struct {
	JWTSecret       string
	AdminPrincipals []string
}

// ModelConfig holds remote model service settings. When Enabled is false the
// deterministic template generator serves all insight requests.
type ModelConfig struct {
	Enabled bool
	BaseURL string
	APIKey  string
	Model   string
}

// SnapshotConfig holds snapshot store settings. Driver "off" disables
// persistence entirely.
type SnapshotConfig struct {
	Driver   string // off, sqlite, postgres
	DSN      string
	Interval time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	intervalMinutes, err := strconv.Atoi(getEnv("SNAPSHOT_INTERVAL_MINUTES", "15"))
	if err != nil || intervalMinutes <= 0 {
		return nil, fmt.Errorf("SNAPSHOT_INTERVAL_MINUTES must be a positive integer")
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		App: AppConfig{
			JWTSecret:       getEnv("JWT_SECRET", ""),
			AdminPrincipals: splitList(getEnv("ADMIN_PRINCIPALS", "")),
		},
		Model: ModelConfig{
			Enabled: getEnv("MODEL_ENABLED", "false") == "true",
			BaseURL: getEnv("MODEL_BASE_URL", ""),
			APIKey:  getEnv("MODEL_API_KEY", ""),
			Model:   getEnv("MODEL_NAME", "gpt-4o-mini"),
		},
		Snapshot: SnapshotConfig{
			Driver:   getEnv("SNAPSHOT_DRIVER", "sqlite"),
			DSN:      getEnv("SNAPSHOT_DSN", "forecast-market.db"),
			Interval: time.Duration(intervalMinutes) * time.Minute,
		},
	}

	// Validate required fields
	if config.App.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	switch config.Snapshot.Driver {
	case "off", "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("SNAPSHOT_DRIVER must be off, sqlite or postgres")
	}

	return config, nil
}

// getEnv gets an environment variable with a fallback default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// splitList parses a comma-separated environment value.
func splitList(value string) []string {
	if value == "" {
		return nil
	}

	var out []string
	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
