package server

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/db"
	"github.com/jonathan/career-compass/internal/types"
)

// UserStore is the subset of the database used by the user service.
type UserStore interface {
	CreateUser(ctx context.Context, name, email, passwordHash string) (uuid.UUID, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*db.User, error)
	UpdateUserPassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// UserService provides business logic for user authentication operations
type UserService struct {
	store          UserStore
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies
func NewUserService(store UserStore, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		store:          store,
		passwordConfig: passwordConfig,
	}
}

// toAPIUser converts db.User to types.User, excluding the password hash
func toAPIUser(dbUser *db.User) *types.User {
	if dbUser == nil {
		return nil
	}
	return &types.User{
		ID:          dbUser.ID,
		DisplayName: dbUser.Name,
		Email:       dbUser.Email,
		CreatedAt:   dbUser.CreatedAt,
		UpdatedAt:   dbUser.UpdatedAt,
	}
}

// Register creates a new user with password authentication
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*types.User, error) {
	// Check if email already exists
	existing, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if existing != nil {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userID, err := s.store.CreateUser(ctx, req.DisplayName, req.Email, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	dbUser, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve created user: %w", err)
	}
	if dbUser == nil {
		return nil, fmt.Errorf("created user not found: %s", userID)
	}

	return toAPIUser(dbUser), nil
}

// Login authenticates a user and returns user data
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	dbUser, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	// Security: Always return generic error if user not found or password wrong
	if dbUser == nil {
		return nil, &ErrInvalidCredentials{}
	}

	if !s.passwordConfig.VerifyPassword(req.Password, dbUser.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	return toAPIUser(dbUser), nil
}

// GetUser returns the API view of a user by ID
func (s *UserService) GetUser(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	dbUser, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if dbUser == nil {
		return nil, &ErrUserNotFound{UserID: userID}
	}
	return toAPIUser(dbUser), nil
}

// UpdatePassword updates a user's password
func (s *UserService) UpdatePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	dbUser, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if dbUser == nil {
		return &ErrUserNotFound{UserID: userID}
	}

	// Verify current password
	if !s.passwordConfig.VerifyPassword(currentPassword, dbUser.PasswordHash) {
		return &ErrPasswordMismatch{}
	}

	newPasswordHash, err := s.passwordConfig.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.store.UpdateUserPassword(ctx, userID, newPasswordHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
