package config

import "os"

// Config holds server settings sourced from the environment
type Config struct {
	Port     string
	DBDriver string // "sqlite" or "postgres"
	DBPath   string // sqlite database file
	DBDSN    string // postgres DSN, required when DBDriver is "postgres"
}

// Load reads configuration from the environment, applying defaults
// suitable for local development.
func Load() *Config {
	return &Config{
		Port:     getEnvWithDefault("PORT", "8080"),
		DBDriver: getEnvWithDefault("ARCBRAIN_DB_DRIVER", "sqlite"),
		DBPath:   getEnvWithDefault("ARCBRAIN_DB_PATH", "arcbrain.db"),
		DBDSN:    os.Getenv("ARCBRAIN_DB_DSN"),
	}
}

// getEnvWithDefault returns the environment value or a fallback
func getEnvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
