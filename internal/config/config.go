// Package config provides environment-driven configuration for the server
// and CLI, plus JWT and password hashing settings.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jonathan/career-compass/internal/catalog"
)

// ServerConfig holds the HTTP server settings and the catalog file
// overrides applied at startup.
type ServerConfig struct {
	Port               int
	DatabaseURL        string
	MaxUploadBytes     int64
	PredictTopK        int
	RateLimitPerMinute int
	AllowedOrigins     []string
	CatalogOverrides   catalog.Overrides
}

// NewServerConfig creates a server configuration from environment
// variables. It reads PORT (default 8000), DATABASE_URL, MAX_UPLOAD_MB
// (default 10), PREDICT_TOP_K (default 3), RATE_LIMIT_PER_MINUTE
// (default 60), CORS_ALLOWED_ORIGINS (comma-separated, default *) and the
// optional CATALOG_CAREERS_FILE, CATALOG_RESOURCES_FILE and
// CATALOG_DEPENDENCIES_FILE catalog override paths.
func NewServerConfig() (*ServerConfig, error) {
	port, err := envInt("PORT", 8000)
	if err != nil {
		return nil, err
	}
	uploadMB, err := envInt("MAX_UPLOAD_MB", 10)
	if err != nil {
		return nil, err
	}
	topK, err := envInt("PREDICT_TOP_K", 3)
	if err != nil {
		return nil, err
	}
	ratePerMinute, err := envInt("RATE_LIMIT_PER_MINUTE", 60)
	if err != nil {
		return nil, err
	}

	config := &ServerConfig{
		Port:               port,
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		MaxUploadBytes:     int64(uploadMB) * 1024 * 1024,
		PredictTopK:        topK,
		RateLimitPerMinute: ratePerMinute,
		AllowedOrigins:     splitOrigins(os.Getenv("CORS_ALLOWED_ORIGINS")),
		CatalogOverrides: catalog.Overrides{
			Careers:      os.Getenv("CATALOG_CAREERS_FILE"),
			Resources:    os.Getenv("CATALOG_RESOURCES_FILE"),
			Dependencies: os.Getenv("CATALOG_DEPENDENCIES_FILE"),
		},
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *ServerConfig) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.MaxUploadBytes < 1 {
		return fmt.Errorf("MAX_UPLOAD_MB must be at least 1")
	}
	if c.PredictTopK < 1 {
		return fmt.Errorf("PREDICT_TOP_K must be at least 1, got: %d", c.PredictTopK)
	}
	if c.RateLimitPerMinute < 1 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be at least 1, got: %d", c.RateLimitPerMinute)
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func envInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return value, nil
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return []string{"*"}
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
