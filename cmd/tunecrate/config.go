package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config contains application-wide settings sourced from the environment.
type Config struct {
	LogLevel      string
	LogFormat     string
	SessionSecret string
	SeedDemo      bool
}

func loadConfig() Config {
	_ = godotenv.Load("config/local.env")

	seed := true
	if raw := os.Getenv("SEED_DEMO"); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			seed = parsed
		}
	}

	return Config{
		LogLevel:      envOrDefault("LOG_LEVEL", "info"),
		LogFormat:     envOrDefault("LOG_FORMAT", "text"),
		SessionSecret: envOrDefault("SESSION_SECRET", "tunecrate-dev-secret"),
		SeedDemo:      seed,
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
