package config

import (
	"os"

	"github.com/cgint/vscode-chat-extractor/internal"
	"github.com/joho/godotenv"
)

// Config holds the server configuration. The store location is explicit
// configuration passed into the scan entry points, never a module-level
// constant.
type Config struct {
	DBPath    string
	HTTPPort  string
	KeyPrefix string
	LogLevel  string
}

// Load reads configuration from the environment, with an optional .env file.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		internal.LogDebug("no .env file found, relying on environment variables")
	}

	return Config{
		DBPath:    getEnv(internal.StateDBEnvVar, ""),
		HTTPPort:  getEnv("HTTP_PORT", "8080"),
		KeyPrefix: getEnv("KEY_PREFIX", internal.DefaultKeyPrefix),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
