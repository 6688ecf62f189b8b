package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the application configuration. It is loaded once at startup and
// passed by reference to the components that need it.
type Config struct {
	ServerPort   int
	DatabasePath string
	JWTSecret    string
	GeminiAPIKey string
	GeminiModel  string
}

// Load loads configuration from environment variables or sets defaults.
// JWT_SECRET and GEMINI_API_KEY have no sane defaults and must be present.
func Load() (*Config, error) {
	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT %q: %w", portStr, err)
	}

	cfg := &Config{
		ServerPort:   port,
		DatabasePath: getEnv("DATABASE_PATH", "./careerpath.db"),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY must be set")
	}

	return cfg, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
