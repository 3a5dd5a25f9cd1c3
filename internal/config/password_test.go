package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPasswordConfig(t *testing.T) {
	tests := []struct {
		name       string
		bcryptCost string
		pepper     string
		wantCost   int
		wantErr    bool
	}{
		{"default cost", "", "", 12, false},
		{"minimum cost", "10", "", 10, false},
		{"maximum cost", "14", "", 14, false},
		{"with pepper", "12", "test-pepper", 12, false},
		{"cost below minimum", "9", "", 0, true},
		{"cost above maximum", "15", "", 0, true},
		{"negative cost", "-5", "", 0, true},
		{"non-numeric cost", "invalid", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BCRYPT_COST", tt.bcryptCost)
			t.Setenv("PASSWORD_PEPPER", tt.pepper)

			cfg, err := NewPasswordConfig()
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCost, cfg.BcryptCost)
			assert.Equal(t, tt.pepper, cfg.Pepper)
		})
	}
}

func TestPasswordConfig_HashAndVerify(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	hash, err := cfg.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, cfg.VerifyPassword("correct horse battery staple", hash))
	assert.False(t, cfg.VerifyPassword("wrong password", hash))
	assert.False(t, cfg.VerifyPassword("", hash))
}

func TestPasswordConfig_HashesAreSalted(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	first, err := cfg.HashPassword("same password")
	require.NoError(t, err)
	second, err := cfg.HashPassword("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "bcrypt salts should make repeated hashes differ")
	assert.True(t, cfg.VerifyPassword("same password", first))
	assert.True(t, cfg.VerifyPassword("same password", second))
}

func TestPasswordConfig_Pepper(t *testing.T) {
	peppered := &PasswordConfig{BcryptCost: 10, Pepper: "server-secret"}
	plain := &PasswordConfig{BcryptCost: 10}

	hash, err := peppered.HashPassword("password123")
	require.NoError(t, err)

	assert.True(t, peppered.VerifyPassword("password123", hash))
	assert.False(t, plain.VerifyPassword("password123", hash),
		"hash made with a pepper should not verify without it")

	other := &PasswordConfig{BcryptCost: 10, Pepper: "different-secret"}
	assert.False(t, other.VerifyPassword("password123", hash))
}

func TestPasswordConfig_VerifyMalformedHash(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	assert.False(t, cfg.VerifyPassword("password", "not-a-bcrypt-hash"))
	assert.False(t, cfg.VerifyPassword("password", ""))
}
