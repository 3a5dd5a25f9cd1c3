package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UpsertProfile creates or replaces a user's career profile
func (db *DB) UpsertProfile(ctx context.Context, profile *Profile) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO profiles (user_id, education, skills, interests, experience_years)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id) DO UPDATE SET
		   education = $2, skills = $3, interests = $4, experience_years = $5,
		   updated_at = NOW()`,
		profile.UserID, profile.Education, profile.Skills, profile.Interests, profile.ExperienceYears,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

// GetProfile retrieves a user's profile. Returns nil when none is stored.
func (db *DB) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	var profile Profile
	err := db.pool.QueryRow(ctx,
		`SELECT user_id, education, skills, interests, experience_years, updated_at
		 FROM profiles WHERE user_id = $1`,
		userID,
	).Scan(&profile.UserID, &profile.Education, &profile.Skills, &profile.Interests,
		&profile.ExperienceYears, &profile.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

// DeleteProfileData removes a user's profile together with all stored
// analyses and roadmaps, leaving the account itself intact.
func (db *DB) DeleteProfileData(ctx context.Context, userID uuid.UUID) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, stmt := range []string{
		`DELETE FROM analyses WHERE user_id = $1`,
		`DELETE FROM roadmaps WHERE user_id = $1`,
		`DELETE FROM profiles WHERE user_id = $1`,
	} {
		if _, err := tx.Exec(ctx, stmt, userID); err != nil {
			return fmt.Errorf("failed to delete profile data: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit profile deletion: %w", err)
	}
	return nil
}
