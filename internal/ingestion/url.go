package ingestion

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/career-compass/internal/fetch"
)

var (
	// ErrHTTPRequestFailed is returned when the HTTP request fails
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when content extraction fails
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
)

// IngestFromURL fetches a profile or portfolio page, extracts its main text,
// cleans it, and returns cleaned text with metadata.
// Platform detection selects platform-specific content and noise selectors.
// If useBrowser is true, falls back to headless browser for SPA sites with
// insufficient content. If verbose is true, logs extraction details.
func IngestFromURL(ctx context.Context, urlStr string, useBrowser bool, verbose bool) (string, *Metadata, error) {
	platform := fetch.DetectPlatform(urlStr)
	if verbose {
		log.Printf("[VERBOSE] URL: %s", urlStr)
		log.Printf("[VERBOSE] Detected platform: %s", platform)
	}

	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	if verbose {
		log.Printf("[VERBOSE] Fetched HTML: %d bytes", len(result.HTML))
	}

	textContent, err := fetch.ExtractMainText(result.HTML,
		fetch.PlatformContentSelectors(platform),
		fetch.PlatformNoiseSelectors(platform)...)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}
	if verbose {
		log.Printf("[VERBOSE] Extracted text: %d chars", len(textContent))
	}

	if useBrowser {
		textContent = browserFallback(ctx, urlStr, textContent, platform, verbose)
	}

	return finishIngest(textContent, urlStr, platform, verbose)
}

// IngestFromURLCached is IngestFromURL backed by a persistent page cache.
// A fresh cached copy skips the network entirely; cache misses are fetched,
// extracted and written back through the fetcher's store.
func IngestFromURLCached(ctx context.Context, urlStr string, fetcher *fetch.CachedFetcher, useBrowser bool, verbose bool) (string, *Metadata, error) {
	platform := fetch.DetectPlatform(urlStr)
	if verbose {
		log.Printf("[VERBOSE] URL: %s", urlStr)
		log.Printf("[VERBOSE] Detected platform: %s", platform)
	}

	result, err := fetcher.Fetch(ctx, urlStr)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	if verbose && result.FromCache {
		log.Printf("[VERBOSE] Cache hit: %d chars of parsed text", len(result.Text))
	}

	textContent := result.Text
	// Cached pages were already rendered and extracted on the original fetch.
	if useBrowser && !result.FromCache {
		textContent = browserFallback(ctx, urlStr, textContent, platform, verbose)
	}

	return finishIngest(textContent, urlStr, platform, verbose)
}

// browserFallback re-renders a page in a headless browser when the HTTP
// extraction looks too thin to be a real profile. Returns the original text
// when rendering does not help.
func browserFallback(ctx context.Context, urlStr, textContent string, platform fetch.Platform, verbose bool) string {
	if !fetch.ShouldUseBrowser(textContent) {
		return textContent
	}
	if verbose {
		log.Printf("[VERBOSE] Content too short (%d chars < %d), falling back to browser rendering...",
			len(textContent), fetch.MinContentLength)
	}

	browserHTML, err := fetch.BrowserSimple(ctx, urlStr, verbose)
	if err != nil {
		if verbose {
			log.Printf("[VERBOSE] Browser rendering failed: %v, using HTTP content", err)
		}
		return textContent
	}

	rendered, err := fetch.ExtractMainText(browserHTML,
		fetch.PlatformContentSelectors(platform),
		fetch.PlatformNoiseSelectors(platform)...)
	if err != nil {
		return textContent
	}
	if verbose {
		log.Printf("[VERBOSE] Browser extracted text: %d chars", len(rendered))
	}
	return rendered
}

func finishIngest(textContent, urlStr string, platform fetch.Platform, verbose bool) (string, *Metadata, error) {
	cleanedText := CleanText(textContent)
	if verbose {
		log.Printf("[VERBOSE] Cleaned text: %d chars", len(cleanedText))
	}

	metadata := NewMetadata(cleanedText, "url", urlStr)
	metadata.Platform = string(platform)

	return cleanedText, metadata, nil
}
