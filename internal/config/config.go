package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the configuration for the application.
type Config struct {
	// GeminiAPIKey is optional. When empty the planner runs in
	// fallback-only mode and never contacts the external model.
	GeminiAPIKey string

	DatabasePath string
	JWTSecret    string
	HTTPAddr     string
	AppEnv       string
}

// NewFromEnv creates a new Config object from environment variables. A .env
// file in the working directory is loaded first when present.
func NewFromEnv() (*Config, error) {
	_ = godotenv.Load()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable not set")
	}

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "./data/nutrisync.db"
	}

	httpAddr := os.Getenv("HTTP_ADDR")
	if httpAddr == "" {
		httpAddr = ":8000"
	}

	return &Config{
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		DatabasePath: dbPath,
		JWTSecret:    jwtSecret,
		HTTPAddr:     httpAddr,
		AppEnv:       os.Getenv("APP_ENV"),
	}, nil
}
