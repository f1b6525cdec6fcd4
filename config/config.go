// Package config loads application configuration from environment variables,
// with Docker-secret file fallbacks for deployed environments.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string
}

// LoadConfig creates a new Config instance from the environment. Each value
// is resolved from the env var first, then from a Docker secret file of the
// same lowercased name, then the default.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerHost:    lookup("SERVER_HOST", "0.0.0.0"),
		ServerPort:    lookup("SERVER_PORT", "8080"),
		DBHost:        lookup("DB_HOST", "localhost"),
		DBPort:        lookup("DB_PORT", "5432"),
		DBUser:        lookup("DB_USER", "postgres"),
		DBPassword:    lookup("DB_PASSWORD", ""),
		DBName:        lookup("DB_NAME", "dishcovery"),
		DBSSLMode:     lookup("DB_SSL_MODE", "disable"),
		RedisHost:     lookup("REDIS_HOST", "localhost"),
		RedisPort:     lookup("REDIS_PORT", "6379"),
		RedisPassword: lookup("REDIS_PASSWORD", ""),
		RedisDB:       0,
		RedisURL:      lookup("REDIS_URL", ""),
		JWTSecret:     lookup("JWT_SECRET", ""),
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// lookup resolves a configuration value from the environment, a secret file,
// or the given fallback, in that order.
func lookup(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	if v := readSecret(strings.ToLower(key)); v != "" {
		return v
	}
	return fallback
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
