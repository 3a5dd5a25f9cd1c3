package server

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonathan/career-compass/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(expirationHours int) *JWTService {
	return NewJWTService(&config.JWTConfig{
		Secret:          "test-secret-key-for-jwt-signing-minimum-32-bytes",
		ExpirationHours: expirationHours,
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	service := newTestJWTService(24)
	userID := uuid.New()

	token, err := service.GenerateToken(userID)
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3, "token should be header.payload.signature")

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, tokenIssuer, claims.Issuer)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.NotNil(t, claims.ExpiresAt)
	assert.NotNil(t, claims.IssuedAt)
}

func TestJWTService_TokensCarryDistinctUsers(t *testing.T) {
	service := newTestJWTService(24)
	alice := uuid.New()
	bob := uuid.New()

	aliceToken, err := service.GenerateToken(alice)
	require.NoError(t, err)
	bobToken, err := service.GenerateToken(bob)
	require.NoError(t, err)

	assert.NotEqual(t, aliceToken, bobToken)

	claims, err := service.ValidateToken(aliceToken)
	require.NoError(t, err)
	assert.Equal(t, alice, claims.UserID)

	claims, err = service.ValidateToken(bobToken)
	require.NoError(t, err)
	assert.Equal(t, bob, claims.UserID)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuing := newTestJWTService(24)
	validating := NewJWTService(&config.JWTConfig{
		Secret:          "a-completely-different-secret-key-with-32-bytes",
		ExpirationHours: 24,
	})

	token, err := issuing.GenerateToken(uuid.New())
	require.NoError(t, err)

	claims, err := validating.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "signature")
}

func TestJWTService_RejectsMalformedTokens(t *testing.T) {
	service := newTestJWTService(24)

	for _, token := range []string{
		"",
		"invalid",
		"invalid.token",
		"invalid.token.format.extra",
		"invalid.base64.signature",
	} {
		claims, err := service.ValidateToken(token)
		assert.Error(t, err, "token %q should be rejected", token)
		assert.Nil(t, claims)
	}
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	service := newTestJWTService(24)
	userID := uuid.New()

	// Sign a token that expired in the past.
	past := time.Now().Add(-1 * time.Hour)
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Minute)),
			IssuedAt:  jwt.NewNumericDate(past),
			NotBefore: jwt.NewNumericDate(past),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(service.config.Secret))
	require.NoError(t, err)

	got, err := service.ValidateToken(tokenString)
	assert.Error(t, err)
	assert.Nil(t, got)
	assert.Contains(t, err.Error(), "expired")
}

func TestJWTService_RejectsWrongIssuer(t *testing.T) {
	service := newTestJWTService(24)
	userID := uuid.New()

	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "some-other-service",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(service.config.Secret))
	require.NoError(t, err)

	got, err := service.ValidateToken(tokenString)
	assert.Error(t, err)
	assert.Nil(t, got)
}
