package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/career-compass/internal/matching"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"email exists", &ErrEmailAlreadyExists{Email: "a@b.com"}, http.StatusConflict},
		{"invalid credentials", &ErrInvalidCredentials{}, http.StatusUnauthorized},
		{"password mismatch", &ErrPasswordMismatch{}, http.StatusUnauthorized},
		{"user not found", &ErrUserNotFound{UserID: uuid.New()}, http.StatusNotFound},
		{"validation", &ErrValidation{Field: "email", Message: "required"}, http.StatusBadRequest},
		{"unknown career", &matching.UnknownCareerError{Title: "Astronaut"}, http.StatusNotFound},
		{"invalid input", &matching.InvalidInputError{Message: "no skills"}, http.StatusBadRequest},
		{"wrapped unknown career", fmt.Errorf("outer: %w", &matching.UnknownCareerError{Title: "X"}), http.StatusNotFound},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
