package fetch

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/chromedp/chromedp"
)

// BrowserTimeout bounds one local headless-browser render.
const BrowserTimeout = 30 * time.Second

// Browser renders pages in a local headless Chrome. It is an optional tier
// for SPA boards when no rendering-service credential is configured.
// Requires Chrome/Chromium on the host.
type Browser struct {
	timeout time.Duration
	verbose bool
}

// NewBrowser creates the local-browser strategy.
func NewBrowser(verbose bool) *Browser {
	return &Browser{timeout: BrowserTimeout, verbose: verbose}
}

// Name identifies this strategy in logs.
func (b *Browser) Name() string { return "browser" }

// Fetch navigates to the URL, waits for JS to render, and returns the DOM.
func (b *Browser) Fetch(ctx context.Context, urlStr string) (string, error) {
	if b.verbose {
		log.Printf("[BROWSER] rendering %s", urlStr)
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

	browserCtx, cancel = context.WithTimeout(browserCtx, b.timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(urlStr),
		chromedp.WaitReady("body"),
		// Give client-side rendering a moment to fill in the posting.
		chromedp.Sleep(3*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			// Dismiss cookie banners when present; ignore failures.
			_ = chromedp.Click(`button[id*="accept"], button[class*="accept"]`, chromedp.NodeVisible).Do(ctx)
			return nil
		}),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	if b.verbose {
		log.Printf("[BROWSER] rendered %d bytes", len(html))
	}

	return html, nil
}

// BuildChain assembles the standard strategy order: rendering service when a
// credential is configured, optional local browser, then the direct GET.
func BuildChain(renderAPIKey string, useBrowser, verbose bool) *Chain {
	var strategies []Strategy
	if renderAPIKey != "" {
		strategies = append(strategies, NewRenderer(renderAPIKey))
	} else if useBrowser {
		strategies = append(strategies, NewBrowser(verbose))
	}
	strategies = append(strategies, NewDirect())
	return NewChain(verbose, strategies...)
}
