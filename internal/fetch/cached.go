// Package fetch - cached.go wraps URL fetching with database-backed caching.
package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-compass/internal/db"
)

// PageStore persists fetched pages. *db.DB implements it; tests substitute
// an in-memory store.
type PageStore interface {
	GetFreshPage(ctx context.Context, pageURL string, maxAge time.Duration) (*db.FetchedPage, error)
	UpsertPage(ctx context.Context, page *db.FetchedPage) error
	DeletePage(ctx context.Context, pageURL string) error
}

// CachedFetcher wraps URL fetching with a persistent page cache.
type CachedFetcher struct {
	store     PageStore
	options   *Options
	cacheTTL  time.Duration
	skipCache bool // For testing or forcing fresh fetches
}

// CachedFetcherConfig holds configuration for the cached fetcher.
type CachedFetcherConfig struct {
	CacheTTL  time.Duration
	SkipCache bool
	Options   *Options
}

// DefaultCachedFetcherConfig returns sensible defaults.
func DefaultCachedFetcherConfig() *CachedFetcherConfig {
	return &CachedFetcherConfig{
		CacheTTL:  db.DefaultPageCacheTTL, // 7 days
		SkipCache: false,
		Options:   DefaultOptions(),
	}
}

// NewCachedFetcher creates a cached fetcher backed by store. A nil store
// disables caching; every fetch goes to the network.
func NewCachedFetcher(store PageStore, config *CachedFetcherConfig) *CachedFetcher {
	if config == nil {
		config = DefaultCachedFetcherConfig()
	}
	if config.Options == nil {
		config.Options = DefaultOptions()
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = db.DefaultPageCacheTTL
	}
	return &CachedFetcher{
		store:     store,
		options:   config.Options,
		cacheTTL:  config.CacheTTL,
		skipCache: config.SkipCache,
	}
}

// CachedResult extends Result with cache metadata.
type CachedResult struct {
	*Result
	FromCache bool      // Whether this result came from cache
	PageID    uuid.UUID // Database ID of the cached page
}

// Fetch retrieves a URL, using cache if available and fresh.
// Returns cached content if within TTL, otherwise fetches fresh content and caches it.
func (f *CachedFetcher) Fetch(ctx context.Context, urlStr string) (*CachedResult, error) {
	// Try the cache first
	if !f.skipCache && f.store != nil {
		cached, err := f.store.GetFreshPage(ctx, urlStr, f.cacheTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to check cache: %w", err)
		}
		if cached != nil {
			return &CachedResult{
				Result: &Result{
					URL:        cached.URL,
					HTML:       derefString(cached.RawHTML),
					Text:       derefString(cached.ParsedText),
					StatusCode: derefInt(cached.HTTPStatus),
				},
				FromCache: true,
				PageID:    cached.ID,
			}, nil
		}
	}

	// Fetch fresh content
	result, err := URL(ctx, urlStr, f.options)
	if err != nil {
		return nil, err
	}

	// Extract text with platform-aware selectors
	platform := DetectPlatform(urlStr)
	text, _ := ExtractMainText(result.HTML, PlatformContentSelectors(platform), PlatformNoiseSelectors(platform)...)
	result.Text = text

	// Store in cache
	if f.store != nil {
		platformStr := string(platform)
		page := &db.FetchedPage{
			URL:        urlStr,
			Platform:   &platformStr,
			RawHTML:    &result.HTML,
			ParsedText: &result.Text,
			HTTPStatus: &result.StatusCode,
		}
		if err := f.store.UpsertPage(ctx, page); err == nil {
			return &CachedResult{
				Result:    result,
				FromCache: false,
				PageID:    page.ID,
			}, nil
		}
		// Cache write failure is not fatal, the fetch succeeded
	}

	return &CachedResult{
		Result:    result,
		FromCache: false,
	}, nil
}

// FetchMultiple fetches multiple URLs concurrently with caching.
// Results are returned in the same order as the input URLs. A failed fetch
// leaves a nil result and a non-nil error at the same index.
func (f *CachedFetcher) FetchMultiple(ctx context.Context, urls []string) ([]*CachedResult, []error) {
	results := make([]*CachedResult, len(urls))
	errs := make([]error, len(urls))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, u := range urls {
		g.Go(func() error {
			result, err := f.Fetch(gCtx, u)
			if err != nil {
				errs[i] = err
				return nil
			}
			results[i] = result
			return nil
		})
	}
	_ = g.Wait()

	return results, errs
}

// InvalidateCache removes a cached page, forcing a re-fetch on next request.
func (f *CachedFetcher) InvalidateCache(ctx context.Context, urlStr string) error {
	if f.store == nil {
		return nil
	}
	return f.store.DeletePage(ctx, urlStr)
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
