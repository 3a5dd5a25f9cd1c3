// Package fetch - browser.go renders JavaScript-heavy profile pages in a
// headless browser when plain HTTP fetching yields too little text.
package fetch

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// MinContentLength is the minimum extracted text length for a plain HTTP
// fetch to count as successful. Profile sites like LinkedIn render most of
// their content client-side, so short extractions trigger the browser path.
const MinContentLength = 500

// DefaultBrowserTimeout bounds a single rendering attempt.
const DefaultBrowserTimeout = 30 * time.Second

// renderSettleDelay gives client-side frameworks time to populate the
// profile sections after the document is ready.
const renderSettleDelay = 3 * time.Second

// ShouldUseBrowser reports whether the extracted text is too short to be a
// real profile, indicating a client-rendered page.
func ShouldUseBrowser(extractedText string) bool {
	return len(strings.TrimSpace(extractedText)) < MinContentLength
}

// WithBrowser renders a profile page in headless Chrome and returns the
// rendered HTML. Requires Chrome/Chromium on the system.
func WithBrowser(ctx context.Context, url string, timeout time.Duration, verbose bool) (string, error) {
	if verbose {
		log.Printf("[BROWSER] Rendering profile page: %s", url)
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string

	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.Sleep(renderSettleDelay),
		chromedp.ActionFunc(func(ctx context.Context) error {
			// Dismiss cookie banners and sign-in overlays when present.
			// Profile sites gate content behind these, so a best-effort
			// click improves extraction. Failures are ignored.
			_ = chromedp.Click(`button[id*="accept"], button[class*="accept"]`, chromedp.NodeVisible).Do(ctx)
			_ = chromedp.Click(`button[class*="dismiss"], .modal__dismiss, [aria-label="Dismiss"]`, chromedp.NodeVisible).Do(ctx)
			return nil
		}),
		chromedp.Sleep(1*time.Second),
		chromedp.OuterHTML("html", &html),
	)

	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	if verbose {
		log.Printf("[BROWSER] Rendered HTML: %d bytes", len(html))
	}

	return html, nil
}

// BrowserSimple renders a page with the default timeout.
func BrowserSimple(ctx context.Context, url string, verbose bool) (string, error) {
	return WithBrowser(ctx, url, DefaultBrowserTimeout, verbose)
}
