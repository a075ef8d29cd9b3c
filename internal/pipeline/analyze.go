package pipeline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/market-intel/internal/analysis"
	"github.com/jonathan/market-intel/internal/cards"
	"github.com/jonathan/market-intel/internal/market"
	"github.com/jonathan/market-intel/internal/types"
)

// AnalyzeRole runs the full intelligence pipeline for a role query:
// acquire comparable postings (cache first, then the market-search
// client), run the four analyzers, and assemble the card set.
//
// A market-search failure is terminal. A missing actor credential is not:
// the analyzers then run over an empty sample and report no-data results,
// with salary falling back to estimation when a model client is available.
func (p *Pipeline) AnalyzeRole(ctx context.Context, role *types.RoleQuery) (types.CardSet, error) {
	if role == nil {
		return nil, fmt.Errorf("role query is required")
	}
	if err := p.validate.Struct(role); err != nil {
		return nil, fmt.Errorf("invalid role query: %w", err)
	}

	runID := newRunID()

	postings, err := p.comparablePostings(ctx, runID, role)
	if err != nil {
		return nil, err
	}

	var (
		salaryResult types.SalaryAnalysis
		skillResult  types.SkillAnalysis
		marketResult types.MarketAnalysis
		respResult   types.ResponsibilitiesAnalysis
	)

	// The four analyzers are independent and side-effect free; only salary
	// and responsibilities may issue a model call each.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		salaryResult = analysis.NewSalaryAnalyzer(p.llmClient, p.cfg.Verbose).Analyze(gctx, postings, role)
		return nil
	})
	g.Go(func() error {
		skillResult = analysis.AnalyzeSkills(postings)
		return nil
	})
	g.Go(func() error {
		marketResult = analysis.AnalyzeMarket(postings)
		return nil
	})
	g.Go(func() error {
		respResult = analysis.NewResponsibilitiesAnalyzer(p.llmClient, p.cfg.Verbose).Analyze(gctx, postings)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	p.emit(runID, "analyze", fmt.Sprintf("analyzed %d postings", len(postings)))

	set := cards.Assemble(role, salaryResult, skillResult, marketResult, respResult)
	p.emit(runID, "assemble", fmt.Sprintf("assembled %d cards", len(set)))

	return set, nil
}

// comparablePostings returns the market sample for a role, consulting the
// cache before paying for a fresh search.
func (p *Pipeline) comparablePostings(ctx context.Context, runID string, role *types.RoleQuery) ([]types.ComparablePosting, error) {
	if postings, ok := p.store.Get(role.JobTitle, role.Location); ok {
		p.emit(runID, "market", fmt.Sprintf("cache hit, %d postings", len(postings)))
		return postings, nil
	}

	if p.marketClient == nil {
		p.emit(runID, "market", "no actor credential configured, analyzing without market data")
		return nil, nil
	}

	query := market.BuildQuery(role, p.cfg.ResultLimit())
	postings, err := p.marketClient.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	p.store.Put(role.JobTitle, role.Location, postings)
	p.emit(runID, "market", fmt.Sprintf("fetched %d postings", len(postings)))

	return postings, nil
}
