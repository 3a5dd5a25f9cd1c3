package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveAnalysis stores an analysis result as JSONB and returns its ID.
// kind distinguishes career predictions, skill extractions and gap
// analyses in listings.
func (db *DB) SaveAnalysis(ctx context.Context, userID uuid.UUID, kind string, input, result any) (uuid.UUID, error) {
	inputJSON, err := json.Marshal(input)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal analysis input: %w", err)
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal analysis result: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO analyses (user_id, kind, input, result)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		userID, kind, inputJSON, resultJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// GetAnalysis retrieves a stored analysis by ID. Returns nil when absent.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*Analysis, error) {
	var analysis Analysis
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, kind, input, result, created_at
		 FROM analyses WHERE id = $1`,
		id,
	).Scan(&analysis.ID, &analysis.UserID, &analysis.Kind, &analysis.Input,
		&analysis.Result, &analysis.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return &analysis, nil
}

// ListAnalyses retrieves a user's analyses, newest first
func (db *DB) ListAnalyses(ctx context.Context, userID uuid.UUID, limit int) ([]Analysis, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, kind, input, result, created_at
		 FROM analyses WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var analyses []Analysis
	for rows.Next() {
		var analysis Analysis
		if err := rows.Scan(&analysis.ID, &analysis.UserID, &analysis.Kind,
			&analysis.Input, &analysis.Result, &analysis.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		analyses = append(analyses, analysis)
	}
	return analyses, nil
}
