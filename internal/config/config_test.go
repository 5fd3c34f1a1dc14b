package config

import (
	"os"
	"testing"
)

func TestNewFromEnv(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("GEMINI_API_KEY", "gemini_key")
		t.Setenv("DATABASE_PATH", "/tmp/test.db")
		t.Setenv("HTTP_ADDR", ":9000")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.JWTSecret != "test-secret" {
			t.Errorf("Expected JWTSecret to be 'test-secret', got '%s'", cfg.JWTSecret)
		}
		if cfg.GeminiAPIKey != "gemini_key" {
			t.Errorf("Expected GeminiAPIKey to be 'gemini_key', got '%s'", cfg.GeminiAPIKey)
		}
		if cfg.DatabasePath != "/tmp/test.db" {
			t.Errorf("Expected DatabasePath to be '/tmp/test.db', got '%s'", cfg.DatabasePath)
		}
		if cfg.HTTPAddr != ":9000" {
			t.Errorf("Expected HTTPAddr to be ':9000', got '%s'", cfg.HTTPAddr)
		}
	})

	t.Run("MissingJWTSecret", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "gemini_key")
		os.Unsetenv("JWT_SECRET")

		_, err := NewFromEnv()
		if err == nil {
			t.Fatal("Expected an error for missing JWT_SECRET, got nil")
		}
		expectedError := "JWT_SECRET environment variable not set"
		if err.Error() != expectedError {
			t.Errorf("Expected error '%s', got '%s'", expectedError, err.Error())
		}
	})

	t.Run("GeminiKeyOptional", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		os.Unsetenv("GEMINI_API_KEY")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.GeminiAPIKey != "" {
			t.Errorf("Expected empty GeminiAPIKey, got '%s'", cfg.GeminiAPIKey)
		}
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		os.Unsetenv("DATABASE_PATH")
		os.Unsetenv("HTTP_ADDR")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.DatabasePath != "./data/nutrisync.db" {
			t.Errorf("Expected default DatabasePath, got '%s'", cfg.DatabasePath)
		}
		if cfg.HTTPAddr != ":8000" {
			t.Errorf("Expected default HTTPAddr ':8000', got '%s'", cfg.HTTPAddr)
		}
	})
}
