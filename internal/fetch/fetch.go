// Package fetch retrieves raw HTML for job posting URLs using an ordered
// chain of strategies. A JS-rendering service is tried first when a
// credential is configured, because many boards render job content client
// side; a direct HTTP GET with browser-like headers is the cheaper fallback
// for server-rendered boards.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

// DirectTimeout is the timeout for the plain HTTP GET tier.
const DirectTimeout = 15 * time.Second

// MaxRedirects caps redirect following for every tier.
const MaxRedirects = 5

// DesktopUserAgent is sent on direct requests so boards serve the full page.
const DesktopUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// Error is a terminal fetch failure. It is returned only after every
// configured strategy has been exhausted.
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

// Strategy retrieves raw HTML for a URL. Implementations must honor ctx
// cancellation and return a non-nil error on any failure, including non-2xx
// responses.
type Strategy interface {
	Name() string
	Fetch(ctx context.Context, urlStr string) (string, error)
}

// Chain tries each strategy in order and returns the first success. The
// chain itself never retries a strategy; failure of one tier simply moves
// on to the next.
type Chain struct {
	strategies []Strategy
	verbose    bool
}

// NewChain builds a chain from the given strategies.
func NewChain(verbose bool, strategies ...Strategy) *Chain {
	return &Chain{strategies: strategies, verbose: verbose}
}

// Fetch runs the chain. The error is terminal and wraps the last tier's
// failure.
func (c *Chain) Fetch(ctx context.Context, urlStr string) (string, error) {
	if len(c.strategies) == 0 {
		return "", &Error{URL: urlStr, Message: "no fetch strategies configured"}
	}

	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	var lastErr error
	for _, s := range c.strategies {
		html, err := s.Fetch(ctx, urlStr)
		if err == nil {
			return html, nil
		}
		lastErr = err
		if c.verbose {
			log.Printf("[FETCH] %s failed for %s: %v", s.Name(), urlStr, err)
		}
		if ctx.Err() != nil {
			break
		}
	}

	return "", &Error{URL: urlStr, Message: "all fetch strategies failed", Cause: lastErr}
}

// Direct is the plain HTTP GET tier.
type Direct struct {
	client *http.Client
}

// NewDirect creates the direct-GET strategy with a 15s timeout and a
// 5-redirect cap.
func NewDirect() *Direct {
	return &Direct{
		client: &http.Client{
			Timeout: DirectTimeout,
			CheckRedirect: func(_ *http.Request, via []*http.Request) error {
				if len(via) >= MaxRedirects {
					return fmt.Errorf("stopped after %d redirects", MaxRedirects)
				}
				return nil
			},
		},
	}
}

// Name identifies this strategy in logs.
func (d *Direct) Name() string { return "direct" }

// Fetch performs the GET with browser-like headers.
func (d *Direct) Fetch(ctx context.Context, urlStr string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", DesktopUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := d.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("HTTP status %d", resp.StatusCode)
	}

	return string(body), nil
}
