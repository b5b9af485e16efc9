package config

import (
	"os"
	"time"
)

// Config holds application configuration
type Config struct {
	ServerPort   string
	DatabaseType string
	DatabasePath string
	DatabaseURL  string

	// DataPath points at the static game data directory (regions.json,
	// birds.json, daily.json). DataBaseURL, when set, wins and the files
	// are fetched over HTTP instead.
	DataPath    string
	DataBaseURL string

	// DailySalt obfuscates published daily answers. It is shared by every
	// installation that consumes the same published table, so changing it
	// orphans previously published entries.
	DailySalt string

	// SessionSecret signs the anonymous device-identity cookie.
	SessionSecret string

	// AdminPasswordHash is a bcrypt hash guarding the publishing endpoint.
	// Empty disables the endpoint entirely.
	AdminPasswordHash string

	// GameTimezone decides when the daily puzzle rolls over.
	GameTimezone string

	ShareBaseURL   string
	MigrationsPath string

	AWSRegion    string
	SESFromEmail string
	SESFromName  string

	DailyTableCacheTTL time.Duration
}

// Load reads configuration from environment variables with sensible defaults
func Load() *Config {
	return &Config{
		ServerPort:        getEnv("PORT", "8080"),
		DatabaseType:      getEnv("DB_TYPE", "sqlite"),
		DatabasePath:      getEnv("DB_PATH", "./audiobirdle.db"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		DataPath:          getEnv("DATA_PATH", "./data"),
		DataBaseURL:       getEnv("DATA_BASE_URL", ""),
		DailySalt:         getEnv("DAILY_SALT", "birdle-salt-2025"),
		SessionSecret:     getEnv("SESSION_SECRET", "audio-birdle-dev-secret"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		GameTimezone:      getEnv("GAME_TIMEZONE", "America/New_York"),
		ShareBaseURL:      getEnv("SHARE_BASE_URL", "https://audio-birdle.example.com"),
		MigrationsPath:    getEnv("MIGRATIONS_PATH", "./migrations"),
		AWSRegion:         getEnv("AWS_REGION", "us-east-1"),
		SESFromEmail:      getEnv("SES_FROM_EMAIL", ""),
		SESFromName:       getEnv("SES_FROM_NAME", "Audio-Birdle"),

		DailyTableCacheTTL: 5 * time.Minute,
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
