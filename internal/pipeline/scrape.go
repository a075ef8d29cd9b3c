package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/market-intel/internal/boards"
	"github.com/jonathan/market-intel/internal/types"
)

// ScrapeResult pairs the raw extraction with its normalized form.
type ScrapeResult struct {
	Scraped *types.ScrapedJobData `json:"scraped"`
	Parsed  *types.ParsedJobData  `json:"parsed"`
}

// ScrapeJob resolves a posting URL into structured job data: fetch the
// HTML through the strategy chain, extract fields with the board's
// selectors, then normalize through the field parser. Only the fetch can
// fail terminally; extraction and parsing always produce a result.
func (p *Pipeline) ScrapeJob(ctx context.Context, urlStr string) (*ScrapeResult, error) {
	runID := newRunID()

	board := boards.Detect(urlStr)
	p.emit(runID, "detect", fmt.Sprintf("board %s for %s", board, urlStr))

	html, err := p.chain.Fetch(ctx, urlStr)
	if err != nil {
		return nil, err
	}
	p.emit(runID, "fetch", fmt.Sprintf("fetched %d bytes", len(html)))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML for %s: %w", urlStr, err)
	}

	scraped := boards.ForBoard(board).Extract(doc, urlStr)
	p.emit(runID, "extract", fmt.Sprintf("extracted %q from %s", scraped.Title, board))

	parsed := p.parser.Parse(ctx, &scraped)
	p.emit(runID, "parse", fmt.Sprintf("parsed with confidence %.2f", parsed.Confidence))

	return &ScrapeResult{Scraped: &scraped, Parsed: parsed}, nil
}
