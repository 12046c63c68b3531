package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Database
	DatabaseURL string

	// Knowledge base
	KBFile string // Path to the YAML knowledge base; empty uses the built-in seed set

	// Inference (extractive QA service)
	InferenceURL     string // Empty disables inference; the bot runs knowledge-base-only
	InferenceToken   string
	InferenceTimeout time.Duration

	// Sessions
	RedisURL   string        // Empty keeps conversation context in-process
	SessionTTL time.Duration // Idle retention for conversation context; 0 retains forever

	// Admin API
	AdminToken string // Bearer token for admin routes; empty disables them

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Site Branding (chat console)
	SiteTitle string // env: SITE_TITLE, default: "Helpbot"
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:              getEnv("ENV", "development"),
		ServerAddr:       getEnv("SERVER_ADDR", ":3000"),
		BaseURL:          getEnv("BASE_URL", "http://localhost:3000"),
		DatabaseURL:      getEnv("DATABASE_URL", "postgres://localhost:5432/helpbot?sslmode=disable"),
		KBFile:           getEnv("KB_FILE", ""),
		InferenceURL:     getEnv("INFERENCE_URL", ""),
		InferenceToken:   getEnv("INFERENCE_TOKEN", ""),
		InferenceTimeout: getDurationEnv("INFERENCE_TIMEOUT_SECONDS", 10*time.Second),
		RedisURL:         getEnv("REDIS_URL", ""),
		SessionTTL:       getDurationEnv("SESSION_TTL_SECONDS", 0),
		AdminToken:       getEnv("ADMIN_TOKEN", ""),
		CORSOrigins:      getEnv("CORS_ORIGINS", ""),
		SiteTitle:        getEnv("SITE_TITLE", "Helpbot"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getDurationEnv reads a whole-seconds environment variable.
func getDurationEnv(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	secs, err := strconv.Atoi(value)
	if err != nil || secs < 0 {
		return fallback
	}
	return time.Duration(secs) * time.Second
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// InferenceEnabled returns true when an inference endpoint is configured.
func (c *Config) InferenceEnabled() bool {
	return c.InferenceURL != ""
}

// AdminEnabled returns true when the admin API is protected by a token.
func (c *Config) AdminEnabled() bool {
	return c.AdminToken != ""
}
