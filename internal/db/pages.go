package db

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DefaultPageCacheTTL is how long a fetched profile page stays fresh.
const DefaultPageCacheTTL = 7 * 24 * time.Hour

// FetchedPage is a cached copy of a fetched profile or portfolio page.
type FetchedPage struct {
	ID          uuid.UUID  `json:"id"`
	URL         string     `json:"url"`
	Platform    *string    `json:"platform,omitempty"`
	RawHTML     *string    `json:"raw_html,omitempty"`
	ParsedText  *string    `json:"parsed_text,omitempty"`
	ContentHash *string    `json:"content_hash,omitempty"`
	HTTPStatus  *int       `json:"http_status,omitempty"`
	FetchedAt   time.Time  `json:"fetched_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IsFresh reports whether the page was fetched within maxAge and has not expired.
func (p *FetchedPage) IsFresh(maxAge time.Duration) bool {
	if time.Since(p.FetchedAt) > maxAge {
		return false
	}
	if p.ExpiresAt != nil && time.Now().After(*p.ExpiresAt) {
		return false
	}
	return true
}

// HashContent returns a hex SHA-256 digest of page content.
func HashContent(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// GetPageByURL retrieves a cached page by URL
func (db *DB) GetPageByURL(ctx context.Context, pageURL string) (*FetchedPage, error) {
	var p FetchedPage
	err := db.pool.QueryRow(ctx,
		`SELECT id, url, platform, raw_html, parsed_text, content_hash, http_status,
		        fetched_at, expires_at, created_at, updated_at
		 FROM fetched_pages WHERE url = $1`,
		pageURL,
	).Scan(&p.ID, &p.URL, &p.Platform, &p.RawHTML, &p.ParsedText, &p.ContentHash,
		&p.HTTPStatus, &p.FetchedAt, &p.ExpiresAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get fetched page: %w", err)
	}
	return &p, nil
}

// GetFreshPage retrieves a page only if it is not stale
func (db *DB) GetFreshPage(ctx context.Context, pageURL string, maxAge time.Duration) (*FetchedPage, error) {
	page, err := db.GetPageByURL(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, nil
	}
	if !page.IsFresh(maxAge) {
		return nil, nil // Stale, should re-fetch
	}
	return page, nil
}

// UpsertPage inserts or updates a fetched page
func (db *DB) UpsertPage(ctx context.Context, page *FetchedPage) error {
	var contentHash *string
	if page.RawHTML != nil {
		hash := HashContent(*page.RawHTML)
		contentHash = &hash
	}

	expiresAt := page.ExpiresAt
	if expiresAt == nil {
		t := time.Now().Add(DefaultPageCacheTTL)
		expiresAt = &t
	}

	err := db.pool.QueryRow(ctx,
		`INSERT INTO fetched_pages (url, platform, raw_html, parsed_text, content_hash, http_status, fetched_at, expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6, NOW(), $7)
		 ON CONFLICT (url) DO UPDATE SET
		     platform = COALESCE($2, fetched_pages.platform),
		     raw_html = $3,
		     parsed_text = $4,
		     content_hash = $5,
		     http_status = $6,
		     fetched_at = NOW(),
		     expires_at = $7,
		     updated_at = NOW()
		 RETURNING id, fetched_at, created_at, updated_at`,
		page.URL, page.Platform, page.RawHTML, page.ParsedText, contentHash,
		page.HTTPStatus, expiresAt,
	).Scan(&page.ID, &page.FetchedAt, &page.CreatedAt, &page.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert fetched page: %w", err)
	}
	return nil
}

// DeletePage removes a cached page by URL
func (db *DB) DeletePage(ctx context.Context, pageURL string) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM fetched_pages WHERE url = $1`, pageURL)
	if err != nil {
		return fmt.Errorf("failed to delete fetched page: %w", err)
	}
	return nil
}
