package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/market-intel/internal/cache"
	"github.com/jonathan/market-intel/internal/config"
	"github.com/jonathan/market-intel/internal/pipeline"
	"github.com/jonathan/market-intel/internal/types"
)

func newTestServer(t *testing.T, opts ...pipeline.Option) *httptest.Server {
	t.Helper()

	p, err := pipeline.New(context.Background(), &config.Config{}, opts...)
	require.NoError(t, err)
	t.Cleanup(p.Close)

	srv := httptest.NewServer(New(Config{Port: 0}, p).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	return resp
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestScrapeEndpoint(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<html><body><h1>Staff Engineer</h1>
<div class="job-description">Build and scale the core platform with a senior team that ships every week and owns its services end to end.</div>
</body></html>`)
	}))
	defer page.Close()

	srv := newTestServer(t)

	t.Run("success", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/v1/scrape", map[string]string{"url": page.URL})
		defer func() { _ = resp.Body.Close() }()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result pipeline.ScrapeResult
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, "Staff Engineer", result.Scraped.Title)
		assert.Equal(t, types.FallbackConfidence, result.Parsed.Confidence)
	})

	t.Run("missing url", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/v1/scrape", map[string]string{})
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("invalid body", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/v1/scrape", "application/json", bytes.NewReader([]byte("{")))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unfetchable url is a bad gateway", func(t *testing.T) {
		dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer dead.Close()

		resp := postJSON(t, srv.URL+"/v1/scrape", map[string]string{"url": dead.URL})
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

		var errBody errorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
		assert.Equal(t, "failed to fetch posting", errBody.Error)
	})
}

func TestAnalyzeEndpoint(t *testing.T) {
	store := cache.NewMemory(time.Hour)
	store.Put("Backend Engineer", "Austin, TX", []types.ComparablePosting{
		{Title: "Backend Engineer", Company: "Acme", Salary: "$120k - $150k", PostedDate: "2 days ago"},
	})

	srv := newTestServer(t, pipeline.WithStore(store))

	t.Run("success", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/v1/analyze", types.RoleQuery{JobTitle: "Backend Engineer", Location: "Austin, TX"})
		defer func() { _ = resp.Body.Close() }()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var set map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&set))
		for _, id := range types.AllCardIDs() {
			assert.Contains(t, set, string(id))
		}
	})

	t.Run("invalid query is a client error", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/v1/analyze", types.RoleQuery{Location: "Austin, TX"})
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("invalid body", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/v1/analyze", "application/json", bytes.NewReader([]byte("not json")))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestCacheStatsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/v1/cache/stats")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats cache.Stats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.Equal(t, 0, stats.Entries)
}

func TestMethodRouting(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/v1/scrape")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
