package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// User represents a registered account
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile represents a user's career profile
type Profile struct {
	UserID          uuid.UUID   `json:"user_id"`
	Education       string      `json:"education"`
	Skills          StringArray `json:"skills"`    // JSONB array
	Interests       StringArray `json:"interests"` // JSONB array
	ExperienceYears int         `json:"experience_years"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// Analysis represents a stored analysis result (career prediction, skill
// extraction, gap analysis). Input and Result are opaque JSONB documents.
type Analysis struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Kind      string          `json:"kind"`
	Input     json.RawMessage `json:"input,omitempty"`
	Result    json.RawMessage `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
}

// SavedRoadmap represents a persisted learning roadmap
type SavedRoadmap struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"user_id"`
	CareerPath string          `json:"career_path"`
	Plan       json.RawMessage `json:"plan"`
	CreatedAt  time.Time       `json:"created_at"`
}

// StringArray handles JSONB string arrays
type StringArray []string

// Scan implements the Scanner interface for StringArray
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = []string{}
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, a)
}

// Value implements the Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}
