// Package market acquires comparable job postings from the external actor
// platform. A search is a two-phase async contract: launch a run, then poll
// its status until it succeeds, fails, or the caller's deadline expires.
// This is the only component in the pipeline with a long-lived blocking
// wait; the whole launch+poll+fetch sequence is one cancellable unit.
package market

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/jonathan/market-intel/internal/types"
)

// DefaultBaseURL is the actor platform's API root.
const DefaultBaseURL = "https://api.apify.com"

// DefaultPollInterval is the delay between run-status checks.
const DefaultPollInterval = 2 * time.Second

// DefaultMaxWait bounds the poll loop when the caller's context carries no
// deadline.
const DefaultMaxWait = 2 * time.Minute

// Terminal run statuses reported by the platform.
const (
	statusSucceeded = "SUCCEEDED"
	statusFailed    = "FAILED"
	statusAborted   = "ABORTED"
	statusTimedOut  = "TIMED-OUT"
)

// Client runs market searches on the actor platform.
type Client struct {
	token        string
	actorID      string
	baseURL      string
	httpClient   *http.Client
	pollInterval time.Duration
	maxWait      time.Duration
	verbose      bool
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API root (tests use an
// httptest server).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithPollInterval overrides the status-check delay.
func WithPollInterval(d time.Duration) Option {
	return func(c *Client) { c.pollInterval = d }
}

// WithMaxWait overrides the default poll budget.
func WithMaxWait(d time.Duration) Option {
	return func(c *Client) { c.maxWait = d }
}

// WithVerbose enables progress logging.
func WithVerbose(verbose bool) Option {
	return func(c *Client) { c.verbose = verbose }
}

// NewClient creates a market-search client for one actor.
func NewClient(token, actorID string, opts ...Option) *Client {
	c := &Client{
		token:        token,
		actorID:      actorID,
		baseURL:      DefaultBaseURL,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		pollInterval: DefaultPollInterval,
		maxWait:      DefaultMaxWait,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// runData is the platform's run envelope.
type runData struct {
	Data struct {
		ID               string `json:"id"`
		Status           string `json:"status"`
		DefaultDatasetID string `json:"defaultDatasetId"`
	} `json:"data"`
}

// Search launches a run for the query, polls until a terminal status, and
// returns the run's dataset. The caller's ctx aborts the poll loop
// mid-wait, not just at call entry; when ctx carries no deadline the
// client's own max wait applies.
func (c *Client) Search(ctx context.Context, query types.MarketQuery) ([]types.ComparablePosting, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.maxWait)
		defer cancel()
	}

	run, err := c.launch(ctx, query)
	if err != nil {
		return nil, err
	}

	if c.verbose {
		log.Printf("[MARKET] launched run %s for %q", run.Data.ID, query.Keywords)
	}

	datasetID, err := c.awaitRun(ctx, run)
	if err != nil {
		return nil, err
	}

	return c.fetchDataset(ctx, datasetID)
}

func (c *Client) launch(ctx context.Context, query types.MarketQuery) (*runData, error) {
	body, err := json.Marshal(toActorInput(query))
	if err != nil {
		return nil, &LaunchError{Message: "failed to encode query", Cause: err}
	}

	endpoint := fmt.Sprintf("%s/v2/acts/%s/runs?token=%s", c.baseURL, c.actorID, c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &LaunchError{Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &LaunchError{Message: "launch request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &LaunchError{Message: fmt.Sprintf("launch returned status %d", resp.StatusCode)}
	}

	var run runData
	if err := json.NewDecoder(resp.Body).Decode(&run); err != nil {
		return nil, &LaunchError{Message: "failed to decode launch response", Cause: err}
	}
	if run.Data.ID == "" {
		return nil, &LaunchError{Message: "launch response carried no run id"}
	}

	return &run, nil
}

// awaitRun polls the run status until a terminal state. The deadline is
// checked on every iteration so a caller-side cancel aborts mid-poll.
func (c *Client) awaitRun(ctx context.Context, run *runData) (string, error) {
	runID := run.Data.ID
	datasetID := run.Data.DefaultDatasetID
	status := run.Data.Status
	started := time.Now()

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		switch status {
		case statusSucceeded:
			return datasetID, nil
		case statusFailed, statusAborted, statusTimedOut:
			return "", &RunError{RunID: runID, Status: status}
		}

		select {
		case <-ctx.Done():
			if ctx.Err() == context.DeadlineExceeded {
				return "", &TimeoutError{RunID: runID, Waited: time.Since(started)}
			}
			return "", ctx.Err()
		case <-ticker.C:
		}

		current, err := c.runStatus(ctx, runID)
		if err != nil {
			return "", err
		}
		status = current.Data.Status
		if current.Data.DefaultDatasetID != "" {
			datasetID = current.Data.DefaultDatasetID
		}

		if c.verbose {
			log.Printf("[MARKET] run %s status %s after %s", runID, status, time.Since(started).Round(time.Second))
		}
	}
}

func (c *Client) runStatus(ctx context.Context, runID string) (*runData, error) {
	endpoint := fmt.Sprintf("%s/v2/actor-runs/%s?token=%s", c.baseURL, runID, c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create status request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("status request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("status request returned %d", resp.StatusCode)
	}

	var run runData
	if err := json.NewDecoder(resp.Body).Decode(&run); err != nil {
		return nil, fmt.Errorf("failed to decode status response: %w", err)
	}
	return &run, nil
}

// datasetItem tolerates the field-name variants the actor emits.
type datasetItem struct {
	Title           string   `json:"title"`
	Company         string   `json:"companyName"`
	CompanyAlt      string   `json:"company"`
	Location        string   `json:"location"`
	Description     string   `json:"description"`
	Salary          string   `json:"salary"`
	ExperienceLevel string   `json:"experienceLevel"`
	EmploymentType  string   `json:"employmentType"`
	PostedDate      string   `json:"postedDate"`
	PostedTime      string   `json:"postedTime"`
	Applicants      int      `json:"applicantsCount"`
	URL             string   `json:"url"`
	Link            string   `json:"link"`
	Skills          []string `json:"skills"`
	Seniority       string   `json:"seniority"`
	Industries      []string `json:"industries"`
}

func (c *Client) fetchDataset(ctx context.Context, datasetID string) ([]types.ComparablePosting, error) {
	if datasetID == "" {
		return nil, fmt.Errorf("run succeeded but reported no dataset")
	}

	endpoint := fmt.Sprintf("%s/v2/datasets/%s/items?token=%s", c.baseURL, datasetID, c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create dataset request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dataset request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("dataset request returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	var items []datasetItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}

	postings := make([]types.ComparablePosting, 0, len(items))
	for _, item := range items {
		company := item.Company
		if company == "" {
			company = item.CompanyAlt
		}
		url := item.URL
		if url == "" {
			url = item.Link
		}
		posted := item.PostedDate
		if posted == "" {
			posted = item.PostedTime
		}
		postings = append(postings, types.ComparablePosting{
			Title:           item.Title,
			Company:         company,
			Location:        item.Location,
			Description:     item.Description,
			Salary:          item.Salary,
			ExperienceLevel: item.ExperienceLevel,
			EmploymentType:  item.EmploymentType,
			PostedDate:      posted,
			Applicants:      item.Applicants,
			URL:             url,
			Skills:          item.Skills,
			Seniority:       item.Seniority,
			Industries:      item.Industries,
		})
	}

	return postings, nil
}
