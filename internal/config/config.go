package config

import (
	"os"

	"billbook/internal/logger"
)

// Config is the application configuration, read from the environment.
// Mains load .env via godotenv before calling Load.
type Config struct {
	// DatabaseURL is the PostgreSQL connection string for the local
	// authoritative store.
	DatabaseURL string

	// RemoteBaseURL is the base URL of the remote document store. Empty
	// means the application runs permanently offline.
	RemoteBaseURL string

	// RemoteAPIKey is the bearer token for the remote document store.
	RemoteAPIKey string

	ServerPort     string
	AllowedOrigins string

	Log logger.Config
}

// Load reads configuration from environment variables, applying defaults
// for everything except DatabaseURL (validated where the pool is opened).
func Load() *Config {
	cfg := &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RemoteBaseURL:  os.Getenv("REMOTE_BASE_URL"),
		RemoteAPIKey:   os.Getenv("REMOTE_API_KEY"),
		ServerPort:     os.Getenv("SERVER_PORT"),
		AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		Log:            logger.DefaultConfig(),
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	return cfg
}
