package cmd

import (
	"os"

	"github.com/joho/godotenv"
)

// Config carries the runtime settings for the application.
type Config struct {
	HTTPPort string
	DataFile string
}

const (
	defaultHTTPPort = "8080"
	defaultDataFile = "food_delivery_data.json"
)

// LoadConfig reads settings from the environment, with a .env file as an
// optional source. Unset values fall back to defaults.
func LoadConfig() Config {
	// a missing .env file is fine, plain environment variables still apply
	_ = godotenv.Load(".env")

	return Config{
		HTTPPort: envOrDefault("HTTP_PORT", defaultHTTPPort),
		DataFile: envOrDefault("DATA_FILE", defaultDataFile),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
