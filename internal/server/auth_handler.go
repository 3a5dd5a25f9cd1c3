package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/career-compass/internal/types"
)

// AuthHandler serves account registration, login and password management.
type AuthHandler struct {
	userService *UserService
	jwtService  *JWTService
	validator   *validator.Validate
}

// NewAuthHandler creates an AuthHandler with the given dependencies.
func NewAuthHandler(userService *UserService, jwtService *JWTService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		jwtService:  jwtService,
		validator:   validator.New(),
	}
}

// decodeRequest decodes and validates a JSON request body. Writes a 400
// response and returns false on failure.
func (h *AuthHandler) decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := h.validator.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, extractValidationErrors(err))
		return false
	}
	return true
}

// respondWithToken issues a token for the user and writes the login payload.
func (h *AuthHandler) respondWithToken(w http.ResponseWriter, user *types.User, status int) {
	token, err := h.jwtService.GenerateToken(user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	writeJSON(w, status, types.LoginResponse{User: user, Token: token})
}

// Register creates a new account and returns it with a fresh token.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req types.RegisterRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	user, err := h.userService.Register(r.Context(), &req)
	if err != nil {
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	h.respondWithToken(w, user, http.StatusCreated)
}

// Login authenticates credentials and returns the account with a token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	user, err := h.userService.Login(r.Context(), &req)
	if err != nil {
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	h.respondWithToken(w, user, http.StatusOK)
}

// Me returns the authenticated user's account.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, HTTPStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// UpdatePasswordWithUserID changes the password for the authenticated user.
func (h *AuthHandler) UpdatePasswordWithUserID(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	var req types.UpdatePasswordRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	if err := h.userService.UpdatePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// extractValidationErrors reduces validator errors to a single readable message.
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		ve := validationErrors[0]
		return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
	}
	return "validation error: invalid request"
}
