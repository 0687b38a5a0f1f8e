// Package config loads runtime configuration from the environment, with
// optional .env file support for local development.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration.
type Config struct {
	Port string

	// Record store
	StoreBackend string // "mongo" or "memory"
	MongoURI     string
	MongoDB      string

	// Sessions
	JWTSecret    string
	CookieSecure bool
	BcryptCost   int

	// Seeded administrator account
	AdminEmail    string
	AdminPassword string
}

// Load reads configuration from the environment, consulting a .env file
// when one is present, and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		StoreBackend: getEnv("STORE_BACKEND", "mongo"),
		MongoURI:     getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:      getEnv("MONGODB_DB", "hedgefund"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		// Default to secure cookies; disable only for local development.
		CookieSecure:  os.Getenv("COOKIE_SECURE") != "false",
		BcryptCost:    12,
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
		}
		if parsed < 4 || parsed > 14 {
			return nil, fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", parsed)
		}
		cfg.BcryptCost = parsed
	}

	switch cfg.StoreBackend {
	case "mongo", "memory":
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q (want mongo or memory)", cfg.StoreBackend)
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET environment variable is required")
	}
	if len(cfg.JWTSecret) < 32 {
		return nil, errors.New("JWT_SECRET must be at least 32 characters for HMAC-SHA256 security")
	}
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil, errors.New("ADMIN_EMAIL and ADMIN_PASSWORD environment variables are required")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
