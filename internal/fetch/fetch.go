// Package fetch retrieves profile and portfolio pages over HTTP and reduces
// them to readable text for skill extraction.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent identifies the service to fetched sites.
const DefaultUserAgent = "Mozilla/5.0 (compatible; CareerCompass/1.0)"

// maxBodyBytes caps how much of a response body is read. Profile pages are
// small; anything larger is not worth parsing.
const maxBodyBytes = 10 << 20

// Result holds the raw and processed content from a URL fetch.
type Result struct {
	URL         string
	HTML        string
	Text        string
	ContentType string
	StatusCode  int
}

// Error describes a failed fetch, keeping the URL for logging.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the fetch behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// URL retrieves HTML content from a URL.
func URL(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", opts.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	client := &http.Client{Timeout: opts.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to read response body", Cause: err}
	}

	result := &Result{
		URL:         urlStr,
		HTML:        string(body),
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
	}

	if resp.StatusCode != http.StatusOK {
		return result, &Error{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	return result, nil
}

// commonNoiseSelector strips chrome that never carries profile content.
const commonNoiseSelector = "nav, footer, header, script, style, noscript, " +
	".ad, .advertisement, .ads, .sidebar, .cookie-banner, .popup"

// ExtractMainText parses HTML and returns the main body text. Noise elements
// are removed first, then the first matching content selector wins. Falls
// back to the body element when nothing matches.
func ExtractMainText(html string, contentSelectors []string, noiseSelectors ...string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(commonNoiseSelector).Remove()
	if len(noiseSelectors) > 0 {
		doc.Find(strings.Join(noiseSelectors, ", ")).Remove()
	}

	var mainContent *goquery.Selection
	for _, selector := range contentSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			mainContent = selection.First()
			break
		}
	}
	if mainContent == nil {
		mainContent = doc.Find("body")
	}

	return cleanWhitespace(mainContent.Text()), nil
}

// DefaultTextSelectors returns standard selectors for general web content.
func DefaultTextSelectors() []string {
	return []string{
		"main",
		"article",
		".content",
		"#content",
		".main-content",
		"#main-content",
	}
}

// ProfilePageSelectors returns selectors optimized for professional profile pages.
func ProfilePageSelectors() []string {
	return []string{
		".profile-content",
		".profile-section",
		"#profile",
		".resume-content",
		".about-section",
		"[data-testid='profile-content']",
		"main",
		"article",
		".content",
		"#content",
	}
}

// PortfolioSelectors returns selectors for portfolio and project pages.
func PortfolioSelectors() []string {
	return []string{
		"main",
		"article",
		".portfolio-content",
		".projects",
		".readme",
		".content",
		"#content",
	}
}

// cleanWhitespace trims each line and drops blank ones.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
