package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultBcryptCost = 12
	minBcryptCost     = 10
	maxBcryptCost     = 14
)

// PasswordConfig controls how account passwords are hashed and checked.
type PasswordConfig struct {
	BcryptCost int
	// Pepper is an optional server-side secret appended to passwords
	// before hashing.
	Pepper string
}

// NewPasswordConfig reads BCRYPT_COST (default 12) and PASSWORD_PEPPER
// from the environment.
func NewPasswordConfig() (*PasswordConfig, error) {
	cost := defaultBcryptCost
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
		}
		cost = parsed
	}

	cfg := &PasswordConfig{
		BcryptCost: cost,
		Pepper:     os.Getenv("PASSWORD_PEPPER"),
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *PasswordConfig) normalize() error {
	if c.BcryptCost < minBcryptCost || c.BcryptCost > maxBcryptCost {
		return fmt.Errorf("bcrypt cost out of range: %d (must be %d-%d)",
			c.BcryptCost, minBcryptCost, maxBcryptCost)
	}
	return nil
}

func (c *PasswordConfig) peppered(pw string) string {
	if c.Pepper == "" {
		return pw
	}
	return pw + c.Pepper
}

// HashPassword returns a bcrypt hash of the password.
func (c *PasswordConfig) HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(c.peppered(pw)), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether the password matches the stored hash.
func (c *PasswordConfig) VerifyPassword(pw, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(c.peppered(pw))) == nil
}
