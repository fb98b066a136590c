package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL   string
	ServerPort    string
	SessionSecret string
	Env           string
	LogLevel      string
	AdminPassword string
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads the process environment, after merging an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		ServerPort:    os.Getenv("SERVER_PORT"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		Env:           os.Getenv("APP_ENV"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}
	if cfg.SessionSecret == "" {
		return nil, errors.New("SESSION_SECRET is not set")
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "admin123"
	}

	return cfg, nil
}
