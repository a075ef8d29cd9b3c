package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// RenderTimeout is the timeout for the rendering-service tier. Rendering a
// JS-heavy board can take tens of seconds, so this is deliberately generous.
const RenderTimeout = 60 * time.Second

// DefaultRenderBaseURL is the rendering service's HTML endpoint.
const DefaultRenderBaseURL = "https://app.scrapingbee.com/api/v1/"

// Renderer is the premium JS-rendering fetch tier. It proxies the target URL
// through a rendering service that executes JavaScript before returning HTML.
type Renderer struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewRenderer creates the rendering-service strategy. The apiKey must be
// non-empty; callers skip this tier entirely when no credential is
// configured.
func NewRenderer(apiKey string) *Renderer {
	return NewRendererWithBaseURL(apiKey, DefaultRenderBaseURL)
}

// NewRendererWithBaseURL allows tests to point the renderer at a stub server.
func NewRendererWithBaseURL(apiKey, baseURL string) *Renderer {
	return &Renderer{
		apiKey:  apiKey,
		baseURL: baseURL,
		client: &http.Client{
			Timeout: RenderTimeout,
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
func (r *Renderer) Name() string { return "renderer" }

// Fetch requests the rendered HTML of urlStr from the service.
func (r *Renderer) Fetch(ctx context.Context, urlStr string) (string, error) {
	params := url.Values{}
	params.Set("api_key", r.apiKey)
	params.Set("url", urlStr)
	params.Set("render_js", "true")

	endpoint := r.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("rendering service request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read rendered response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("rendering service status %d", resp.StatusCode)
	}

	return string(body), nil
}
