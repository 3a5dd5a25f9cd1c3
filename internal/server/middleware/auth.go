// Package middleware provides HTTP middleware for request authentication.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// ContextKey is a typed context key to avoid collisions with other packages.
type ContextKey string

const userIDKey ContextKey = "userID"

// TokenValidator validates an access token and returns its claims. The
// indirection keeps the middleware independent of the JWT implementation.
type TokenValidator interface {
	ValidateToken(tokenString string) (UserIDGetter, error)
}

// UserIDGetter exposes the authenticated user ID carried by token claims.
type UserIDGetter interface {
	GetUserID() uuid.UUID
}

// AuthMiddleware returns middleware that requires a valid bearer token and
// places the authenticated user ID on the request context.
func AuthMiddleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				unauthorized(w)
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.GetUserID())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from an Authorization header. The scheme
// comparison is case-insensitive. Returns "" for anything malformed.
func bearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
}

// GetUserID returns the authenticated user ID from the request context.
func GetUserID(r *http.Request) (uuid.UUID, error) {
	userID, ok := r.Context().Value(userIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, fmt.Errorf("user ID not found in request context")
	}
	return userID, nil
}

// UserIDKey exposes the context key so tests can inject an authenticated user.
func UserIDKey() ContextKey {
	return userIDKey
}
