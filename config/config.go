package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	JWTSecret  string
	TokenTTL   time.Duration
	UploadDir  string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		// No .env file - environment may already be set in production.
	}

	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     getEnv("DB_PORT", "5432"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		TokenTTL:   time.Hour,
		UploadDir:  getEnv("UPLOAD_DIR", "uploads"),
	}

	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		if parsed, err := time.ParseDuration(ttl); err == nil {
			cfg.TokenTTL = parsed
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
