package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, "test-secret-key", cfg.Secret)
	assert.Equal(t, 24, cfg.ExpirationHours, "should default to 24 hours")
}

func TestNewJWTConfig_CustomExpiration(t *testing.T) {
	tests := []struct {
		name       string
		expiration string
		wantHours  int
	}{
		{"twelve hours", "12", 12},
		{"minimum one hour", "1", 1},
		{"one week", "168", 168},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "test-secret-key")
			t.Setenv("JWT_EXPIRATION_HOURS", tt.expiration)

			cfg, err := NewJWTConfig()
			require.NoError(t, err)
			assert.Equal(t, tt.wantHours, cfg.ExpirationHours)
		})
	}
}

func TestNewJWTConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg, err := NewJWTConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestNewJWTConfig_InvalidExpiration(t *testing.T) {
	tests := []struct {
		name       string
		expiration string
	}{
		{"non-numeric", "invalid"},
		{"zero", "0"},
		{"negative", "-1"},
		{"float", "12.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "test-secret-key")
			t.Setenv("JWT_EXPIRATION_HOURS", tt.expiration)

			cfg, err := NewJWTConfig()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), "JWT_EXPIRATION_HOURS")
		})
	}
}
