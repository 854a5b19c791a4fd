package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const defaultDatabaseURL = "root:admin@tcp(localhost:3309)/fastapi_db?charset=utf8mb4&parseTime=True&loc=Local"

type Config struct {
	Port        string
	DatabaseURL string
}

// Load reads configuration from the environment, falling back to local
// development defaults. A .env file is honoured when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", defaultDatabaseURL),
	}
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
