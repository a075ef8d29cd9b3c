// Package pipeline wires the scraping, parsing, market-search, analysis,
// and card-assembly stages into the two entry points the outside world
// uses: scrape a posting URL, or analyze a role query into cards.
package pipeline

import (
	"context"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/market-intel/internal/cache"
	"github.com/jonathan/market-intel/internal/config"
	"github.com/jonathan/market-intel/internal/fetch"
	"github.com/jonathan/market-intel/internal/llm"
	"github.com/jonathan/market-intel/internal/market"
	"github.com/jonathan/market-intel/internal/parsing"
)

// ProgressEvent reports one pipeline stage transition.
type ProgressEvent struct {
	RunID   string `json:"run_id"`
	Step    string `json:"step"`
	Message string `json:"message"`
}

// ProgressCallback receives progress events when configured.
type ProgressCallback func(event ProgressEvent)

// Pipeline holds the wired stages. Independent runs may execute
// concurrently; the cache is the only shared mutable state.
type Pipeline struct {
	cfg          *config.Config
	chain        *fetch.Chain
	llmClient    llm.Client
	parser       *parsing.FieldParser
	marketClient *market.Client
	store        cache.Store
	validate     *validator.Validate
	onProgress   ProgressCallback
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithProgress sets the progress callback.
func WithProgress(cb ProgressCallback) Option {
	return func(p *Pipeline) { p.onProgress = cb }
}

// WithStore substitutes the result cache (tests inject one with a fake
// clock).
func WithStore(store cache.Store) Option {
	return func(p *Pipeline) { p.store = store }
}

// WithMarketClient substitutes the market-search client.
func WithMarketClient(client *market.Client) Option {
	return func(p *Pipeline) { p.marketClient = client }
}

// WithLLMClient substitutes the language-model client.
func WithLLMClient(client llm.Client) Option {
	return func(p *Pipeline) {
		p.llmClient = client
		p.parser = parsing.NewFieldParser(client, p.cfg.Verbose)
	}
}

// New builds a pipeline from configuration. Each missing credential
// disables its external service and the corresponding fallback takes over;
// construction itself never fails on absent credentials.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*Pipeline, error) {
	if cfg == nil {
		cfg = &config.Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Pipeline{
		cfg:      cfg,
		chain:    fetch.BuildChain(cfg.RenderAPIKey, cfg.UseBrowser, cfg.Verbose),
		store:    cache.NewMemory(cfg.CacheTTL()),
		validate: validator.New(),
	}

	if cfg.GeminiAPIKey != "" {
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.GeminiAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create model client: %w", err)
		}
		p.llmClient = client
	}
	p.parser = parsing.NewFieldParser(p.llmClient, cfg.Verbose)

	if cfg.ActorAPIToken != "" && cfg.ActorID != "" {
		mopts := []market.Option{
			market.WithMaxWait(cfg.MaxWait()),
			market.WithVerbose(cfg.Verbose),
		}
		if cfg.ActorBaseURL != "" {
			mopts = append(mopts, market.WithBaseURL(cfg.ActorBaseURL))
		}
		p.marketClient = market.NewClient(cfg.ActorAPIToken, cfg.ActorID, mopts...)
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Close releases held resources.
func (p *Pipeline) Close() {
	if p.llmClient != nil {
		_ = p.llmClient.Close()
	}
}

// CacheStats exposes the result cache counters.
func (p *Pipeline) CacheStats() cache.Stats {
	return p.store.Stats()
}

func (p *Pipeline) emit(runID, step, message string) {
	if p.cfg.Verbose {
		log.Printf("[PIPELINE] %s: %s", step, message)
	}
	if p.onProgress != nil {
		p.onProgress(ProgressEvent{RunID: runID, Step: step, Message: message})
	}
}

func newRunID() string {
	return uuid.New().String()
}
