package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration
type Config struct {
	Port               string
	DBPath             string
	JWTSecret          string
	TokenTTL           time.Duration
	ClusterThresholdPx float64 // Default marker clustering radius in pixels
	RateLimit          int
	RateLimitWindow    time.Duration
}

// Load reads configuration from environment variables with defaults
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/travel-guide.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	return &Config{
		Port:               port,
		DBPath:             dbPath,
		JWTSecret:          jwtSecret,
		TokenTTL:           time.Duration(envInt("TOKEN_TTL_HOURS", 72)) * time.Hour,
		ClusterThresholdPx: envFloat("CLUSTER_THRESHOLD_PX", 40),
		RateLimit:          envInt("RATE_LIMIT", 300),
		RateLimitWindow:    time.Duration(envInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
	}
}

func envInt(key string, fallback int) int {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v >= 0 {
			return v
		}
	}
	return fallback
}
