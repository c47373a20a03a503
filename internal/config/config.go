package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the application
type Config struct {
	Port           string
	AllowedOrigins []string
	LogLevel       string
	Environment    string

	// SessionSecret signs the session cookie tokens.
	SessionSecret string

	// SpreadsheetID and SheetsCredentialsJSON configure the Google Sheets
	// store. When either is empty the application falls back to the static
	// in-memory fixture store.
	SpreadsheetID         string
	SheetsCredentialsJSON string

	// RedisURL configures the optional leaderboard cache.
	RedisURL string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port:                  getEnv("PORT", "8080"),
		AllowedOrigins:        parseOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		Environment:           getEnv("ENVIRONMENT", "production"),
		SessionSecret:         getEnv("SESSION_SECRET", "gameverse-secret-key-change-in-production"),
		SpreadsheetID:         getEnv("SHEETS_SPREADSHEET_ID", ""),
		SheetsCredentialsJSON: getEnv("SHEETS_CREDENTIALS_JSON", ""),
		RedisURL:              getEnv("REDIS_URL", ""),
	}, nil
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// HasSheets reports whether the Google Sheets store is configured.
func (c *Config) HasSheets() bool {
	return c.SpreadsheetID != "" && c.SheetsCredentialsJSON != ""
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// parseOrigins parses comma-separated origins into a slice
func parseOrigins(origins string) []string {
	if origins == "" {
		return []string{}
	}

	parts := strings.Split(origins, ",")
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
