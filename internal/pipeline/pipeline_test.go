package pipeline

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/market-intel/internal/cache"
	"github.com/jonathan/market-intel/internal/config"
	"github.com/jonathan/market-intel/internal/fetch"
	"github.com/jonathan/market-intel/internal/market"
	"github.com/jonathan/market-intel/internal/types"
)

const jobPageHTML = `<html><body>
<h1>Senior Backend Engineer</h1>
<div class="company">Acme Corp</div>
<div class="location">Austin, TX</div>
<div class="salary">$140,000 - $170,000</div>
<div class="job-description">
We are hiring a senior backend engineer to build and operate core services.
The role is hands-on with plenty of ownership across our platform.
Requirements:
<ul><li>5+ years of production Go experience</li></ul>
</div>
</body></html>`

func newTestPipeline(t *testing.T, opts ...Option) *Pipeline {
	t.Helper()
	p, err := New(context.Background(), &config.Config{}, opts...)
	require.NoError(t, err)
	t.Cleanup(p.Close)
	return p
}

func TestNew_NoCredentialsStillConstructs(t *testing.T) {
	p := newTestPipeline(t)
	assert.Nil(t, p.llmClient)
	assert.Nil(t, p.marketClient)
	assert.NotNil(t, p.store)
	assert.NotNil(t, p.parser)
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	_, err := New(context.Background(), &config.Config{MaxResults: -1})
	assert.Error(t, err)
}

func TestScrapeJob(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, jobPageHTML)
	}))
	defer srv.Close()

	var steps []string
	p := newTestPipeline(t, WithProgress(func(e ProgressEvent) {
		steps = append(steps, e.Step)
	}))

	result, err := p.ScrapeJob(context.Background(), srv.URL)
	require.NoError(t, err)
	require.NotNil(t, result.Scraped)
	require.NotNil(t, result.Parsed)

	assert.Equal(t, "Senior Backend Engineer", result.Scraped.Title)
	assert.Equal(t, "Acme Corp", result.Scraped.Company)
	assert.Equal(t, "generic", result.Scraped.SourceBoard)

	// No model credential, so parsing comes from the deterministic extractor.
	assert.Equal(t, "140000", result.Parsed.MinSalary)
	assert.Equal(t, "170000", result.Parsed.MaxSalary)
	assert.Equal(t, types.FallbackConfidence, result.Parsed.Confidence)

	assert.Equal(t, []string{"detect", "fetch", "extract", "parse"}, steps)
}

func TestScrapeJob_FetchFailureIsTerminal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	p := newTestPipeline(t)

	_, err := p.ScrapeJob(context.Background(), srv.URL)
	var fetchErr *fetch.Error
	require.ErrorAs(t, err, &fetchErr)
}

func cachedPostings() []types.ComparablePosting {
	return []types.ComparablePosting{
		{Title: "Backend Engineer", Company: "Acme", Salary: "$120k - $150k", Applicants: 60, PostedDate: "2 days ago", Description: "Go and PostgreSQL work."},
		{Title: "Backend Engineer", Company: "Globex", Applicants: 40, PostedDate: "1 week ago", Description: "Responsibilities: design and build APIs."},
	}
}

func TestAnalyzeRole_UsesCachedPostings(t *testing.T) {
	store := cache.NewMemory(time.Hour)
	store.Put("Backend Engineer", "Austin, TX", cachedPostings())

	p := newTestPipeline(t, WithStore(store))

	role := &types.RoleQuery{JobTitle: "Backend Engineer", Location: "Austin, TX"}
	set, err := p.AnalyzeRole(context.Background(), role)
	require.NoError(t, err)

	require.Len(t, set, len(types.AllCardIDs()))

	pay, ok := set[types.CardPay].(types.PayCard)
	require.True(t, ok)
	assert.Contains(t, pay.DataSource, "2 salary data points")

	m, ok := set[types.CardMarket].(types.MarketCard)
	require.True(t, ok)
	assert.Equal(t, 2, m.OpenPositions)

	assert.Equal(t, int64(1), p.CacheStats().Hits)
}

func TestAnalyzeRole_NoMarketClientAnalyzesEmptySample(t *testing.T) {
	p := newTestPipeline(t)

	set, err := p.AnalyzeRole(context.Background(), &types.RoleQuery{JobTitle: "Backend Engineer"})
	require.NoError(t, err, "a missing actor credential is not an error")

	require.Len(t, set, len(types.AllCardIDs()))
	m := set[types.CardMarket].(types.MarketCard)
	assert.Equal(t, 0, m.OpenPositions)
	assert.Equal(t, "Medium", m.CompetitionLevel)
}

func TestAnalyzeRole_ValidatesQuery(t *testing.T) {
	p := newTestPipeline(t)

	tests := []struct {
		name string
		role *types.RoleQuery
	}{
		{"nil role", nil},
		{"missing title", &types.RoleQuery{Location: "Austin"}},
		{"title too short", &types.RoleQuery{JobTitle: "x"}},
		{"bad work model", &types.RoleQuery{JobTitle: "Engineer", WorkModel: "moon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.AnalyzeRole(context.Background(), tt.role)
			assert.Error(t, err)
		})
	}
}

func TestAnalyzeRole_MarketFailureIsTerminal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := market.NewClient("token", "actor", market.WithBaseURL(srv.URL), market.WithMaxWait(time.Second))
	p := newTestPipeline(t, WithMarketClient(client))

	_, err := p.AnalyzeRole(context.Background(), &types.RoleQuery{JobTitle: "Backend Engineer"})
	var launchErr *market.LaunchError
	require.ErrorAs(t, err, &launchErr)
}

func TestAnalyzeRole_SearchResultIsCached(t *testing.T) {
	launches := 0
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v2/acts/actor/runs", func(w http.ResponseWriter, _ *http.Request) {
		launches++
		fmt.Fprint(w, `{"data": {"id": "run-1", "status": "SUCCEEDED", "defaultDatasetId": "ds-1"}}`)
	})
	mux.HandleFunc("GET /v2/datasets/ds-1/items", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `[{"title": "Backend Engineer", "companyName": "Acme"}]`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := market.NewClient("token", "actor", market.WithBaseURL(srv.URL), market.WithMaxWait(time.Second))
	p := newTestPipeline(t, WithMarketClient(client))

	role := &types.RoleQuery{JobTitle: "Backend Engineer", Location: "Remote"}

	_, err := p.AnalyzeRole(context.Background(), role)
	require.NoError(t, err)
	_, err = p.AnalyzeRole(context.Background(), role)
	require.NoError(t, err)

	assert.Equal(t, 1, launches, "second run should be served from the cache")
}
