package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeValidator accepts only the tokens registered with addToken.
type fakeValidator struct {
	tokens map[string]uuid.UUID
}

func newFakeValidator() *fakeValidator {
	return &fakeValidator{tokens: make(map[string]uuid.UUID)}
}

func (v *fakeValidator) addToken(token string, userID uuid.UUID) {
	v.tokens[token] = userID
}

func (v *fakeValidator) ValidateToken(tokenString string) (UserIDGetter, error) {
	userID, ok := v.tokens[tokenString]
	if !ok {
		return nil, fmt.Errorf("invalid token")
	}
	return fakeClaims{userID: userID}, nil
}

type fakeClaims struct {
	userID uuid.UUID
}

func (c fakeClaims) GetUserID() uuid.UUID {
	return c.userID
}

func runAuth(t *testing.T, validator TokenValidator, authHeader string) (*httptest.ResponseRecorder, bool, uuid.UUID) {
	t.Helper()

	handlerCalled := false
	var contextUserID uuid.UUID
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		id, err := GetUserID(r)
		require.NoError(t, err)
		contextUserID = id
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/users/profile", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()

	AuthMiddleware(validator)(handler).ServeHTTP(w, req)
	return w, handlerCalled, contextUserID
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	validator := newFakeValidator()
	userID := uuid.New()
	validator.addToken("valid-token-123", userID)

	w, called, contextUserID := runAuth(t, validator, "Bearer valid-token-123")

	assert.True(t, called, "handler should run for a valid token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, contextUserID)
}

func TestAuthMiddleware_CaseInsensitiveScheme(t *testing.T) {
	validator := newFakeValidator()
	userID := uuid.New()
	validator.addToken("valid-token-123", userID)

	for _, scheme := range []string{"bearer", "BEARER", "BeArEr"} {
		w, called, _ := runAuth(t, validator, scheme+" valid-token-123")
		assert.True(t, called, "scheme %q should be accepted", scheme)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	validator := newFakeValidator()
	validator.addToken("valid-token-123", uuid.New())

	tests := []struct {
		name       string
		authHeader string
	}{
		{"missing header", ""},
		{"no scheme", "valid-token-123"},
		{"scheme without token", "Bearer"},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"unknown token", "Bearer not-a-registered-token"},
		{"malformed jwt", "Bearer not.a.valid.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, called, _ := runAuth(t, validator, tt.authHeader)
			assert.False(t, called, "handler should not run")
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "unauthorized")
		})
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Bearer abc123", "abc123"},
		{"bearer abc123", "abc123"},
		{"Bearer  abc123", "abc123"},
		{"Bearer", ""},
		{"abc123", ""},
		{"", ""},
		{"Bearer abc 123", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, bearerToken(tt.header), "header %q", tt.header)
	}
}

func TestGetUserID_Success(t *testing.T) {
	userID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/users/profile", nil)
	req = req.WithContext(context.WithValue(req.Context(), userIDKey, userID))

	got, err := GetUserID(req)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestGetUserID_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/users/profile", nil)

	got, err := GetUserID(req)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
}

func TestGetUserID_WrongType(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/users/profile", nil)
	req = req.WithContext(context.WithValue(req.Context(), userIDKey, "not-a-uuid"))

	got, err := GetUserID(req)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
}
