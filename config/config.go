package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port   string
	DBPath string

	// JWTSecret signs the bearer tokens. The server refuses to start
	// without it.
	JWTSecret string

	GeminiAPIKey string
	GeminiModel  string

	OpenWeatherAPIKey string

	StripeSecretKey     string
	StripeWebhookSecret string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:                get("PORT", "8080"),
		DBPath:              get("DB_PATH", "agriconnect.db"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		GeminiAPIKey:        os.Getenv("GEMINI_API_KEY"),
		GeminiModel:         get("GEMINI_MODEL", "gemini-1.5-pro"),
		OpenWeatherAPIKey:   os.Getenv("OPENWEATHER_API_KEY"),
		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
	}
	if cfg.JWTSecret == "" {
		log.Fatal("[cfg] JWT_SECRET is not defined")
	}
	return cfg
}
