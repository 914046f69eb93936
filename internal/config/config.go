package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port           string
	DatabaseURL    string
	LogLevel       string
	AllowedOrigins string
}

func Load() AppConfig {
	_ = godotenv.Load() // load .env if present

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("missing required env: DATABASE_URL")
	}
	return AppConfig{
		Port:           getEnv("PORT", "3000"),
		DatabaseURL:    dbURL,
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: os.Getenv("CORS_ALLOWED_ORIGINS"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
