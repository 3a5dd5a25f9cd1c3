package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveRoadmap stores a generated roadmap as JSONB and returns its ID
func (db *DB) SaveRoadmap(ctx context.Context, userID uuid.UUID, careerPath string, plan any) (uuid.UUID, error) {
	planJSON, err := json.Marshal(plan)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal roadmap: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO roadmaps (user_id, career_path, plan)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		userID, careerPath, planJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save roadmap: %w", err)
	}
	return id, nil
}

// GetRoadmap retrieves a saved roadmap by ID. Returns nil when absent.
func (db *DB) GetRoadmap(ctx context.Context, id uuid.UUID) (*SavedRoadmap, error) {
	var roadmap SavedRoadmap
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, career_path, plan, created_at
		 FROM roadmaps WHERE id = $1`,
		id,
	).Scan(&roadmap.ID, &roadmap.UserID, &roadmap.CareerPath, &roadmap.Plan, &roadmap.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get roadmap: %w", err)
	}
	return &roadmap, nil
}

// ListRoadmaps retrieves a user's saved roadmaps, newest first
func (db *DB) ListRoadmaps(ctx context.Context, userID uuid.UUID) ([]SavedRoadmap, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, career_path, plan, created_at
		 FROM roadmaps WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list roadmaps: %w", err)
	}
	defer rows.Close()

	var roadmaps []SavedRoadmap
	for rows.Next() {
		var roadmap SavedRoadmap
		if err := rows.Scan(&roadmap.ID, &roadmap.UserID, &roadmap.CareerPath,
			&roadmap.Plan, &roadmap.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan roadmap: %w", err)
		}
		roadmaps = append(roadmaps, roadmap)
	}
	return roadmaps, nil
}

// DeleteRoadmap deletes a saved roadmap owned by the given user
func (db *DB) DeleteRoadmap(ctx context.Context, id, userID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM roadmaps WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete roadmap: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("roadmap not found: %s", id)
	}
	return nil
}
