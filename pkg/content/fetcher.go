// Package content collects raw input material (scraped web pages, writing
// samples) into a single text blob for voice profile generation.
package content

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the per-URL HTTP request timeout.
const DefaultTimeout = 10 * time.Second

// defaultUserAgent identifies the scraper to origin servers.
const defaultUserAgent = "Mozilla/5.0 (compatible; VoiceEngine/1.0)"

// PageFetcher retrieves the visible text content of a web page.
type PageFetcher interface {
	FetchText(ctx context.Context, pageURL string) (string, error)
}

// FetchError records a failure to fetch or parse a single URL.
type FetchError struct {
	URL     string
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// HTTPFetcher fetches pages over HTTP and extracts visible text with goquery.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

// NewHTTPFetcher creates a fetcher with the given timeout (DefaultTimeout if zero).
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &HTTPFetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
	}
}

// FetchText implements PageFetcher.
func (f *HTTPFetcher) FetchText(ctx context.Context, pageURL string) (string, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &FetchError{URL: pageURL, Message: "invalid URL", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", &FetchError{URL: pageURL, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &FetchError{URL: pageURL, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &FetchError{URL: pageURL, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", &FetchError{URL: pageURL, Message: "failed to parse HTML", Cause: err}
	}

	// Remove non-visible and boilerplate elements before extracting text.
	doc.Find("script, style, noscript, nav, footer, header").Remove()

	text := cleanWhitespace(doc.Find("body").Text())
	if text == "" {
		return "", &FetchError{URL: pageURL, Message: "no visible text"}
	}

	return text, nil
}

// cleanWhitespace collapses runs of whitespace into single spaces and trims
// empty lines, so page text concatenates cleanly into a prompt.
func cleanWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Ensure HTTPFetcher implements PageFetcher at compile time.
var _ PageFetcher = (*HTTPFetcher)(nil)
