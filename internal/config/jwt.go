package config

import (
	"fmt"
	"os"
	"strconv"
)

const defaultTokenExpirationHours = 24

// JWTConfig holds the signing secret and lifetime for access tokens.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// NewJWTConfig reads JWT_SECRET (required) and JWT_EXPIRATION_HOURS
// (default 24) from the environment.
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	hours := defaultTokenExpirationHours
	if v := os.Getenv("JWT_EXPIRATION_HOURS"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %v", err)
		}
		hours = parsed
	}

	cfg := &JWTConfig{Secret: secret, ExpirationHours: hours}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *JWTConfig) normalize() error {
	if c.Secret == "" {
		return fmt.Errorf("JWT_SECRET cannot be empty")
	}
	if c.ExpirationHours < 1 {
		return fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", c.ExpirationHours)
	}
	return nil
}
