// Package config provides configuration loading and validation for the CLI
// and server. Credentials come from the environment; everything else may be
// supplied via an optional JSON config file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Environment variable names for external service credentials. Presence or
// absence of each credential changes pipeline behavior (fallbacks engage);
// a missing credential never aborts a run.
const (
	EnvRenderAPIKey  = "RENDER_API_KEY"
	EnvGeminiAPIKey  = "GEMINI_API_KEY"
	EnvActorAPIToken = "ACTOR_API_TOKEN"
)

// Defaults for tunable limits.
const (
	DefaultMaxResults = 25
	DefaultCacheTTL   = 24 * time.Hour
	DefaultMaxWait    = 2 * time.Minute
)

// Config holds runtime configuration. All fields are optional; missing
// values use defaults or are read from the environment.
type Config struct {
	// Credentials
	RenderAPIKey  string `json:"render_api_key,omitempty"`  // JS-rendering fetch service
	GeminiAPIKey  string `json:"gemini_api_key,omitempty"`  // Language model endpoint
	ActorAPIToken string `json:"actor_api_token,omitempty"` // Actor platform

	// Actor platform
	ActorID      string `json:"actor_id,omitempty"`       // Market-search actor to launch
	ActorBaseURL string `json:"actor_base_url,omitempty"` // Override for tests

	// Behavior
	UseBrowser bool `json:"use_browser,omitempty"` // Allow local headless rendering
	Verbose    bool `json:"verbose,omitempty"`     // Print detailed progress
	MaxResults int  `json:"max_results,omitempty"` // Comparable postings per query

	// Limits
	CacheTTLHours  int `json:"cache_ttl_hours,omitempty"`
	MaxWaitSeconds int `json:"max_wait_seconds,omitempty"` // Actor run poll budget
}

// Load reads configuration from a JSON file. Returns an error if the file
// cannot be read or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config populated from environment variables only.
func FromEnv() *Config {
	return &Config{
		RenderAPIKey:  os.Getenv(EnvRenderAPIKey),
		GeminiAPIKey:  os.Getenv(EnvGeminiAPIKey),
		ActorAPIToken: os.Getenv(EnvActorAPIToken),
	}
}

// ApplyEnv fills empty credential fields from the environment. File values
// win over environment values so tests can pin credentials explicitly.
func (c *Config) ApplyEnv() {
	if c.RenderAPIKey == "" {
		c.RenderAPIKey = os.Getenv(EnvRenderAPIKey)
	}
	if c.GeminiAPIKey == "" {
		c.GeminiAPIKey = os.Getenv(EnvGeminiAPIKey)
	}
	if c.ActorAPIToken == "" {
		c.ActorAPIToken = os.Getenv(EnvActorAPIToken)
	}
}

// Validate checks that the configuration has sane values.
func (c *Config) Validate() error {
	if c.MaxResults < 0 {
		return fmt.Errorf("config error: 'max_results' must be non-negative")
	}
	if c.CacheTTLHours < 0 {
		return fmt.Errorf("config error: 'cache_ttl_hours' must be non-negative")
	}
	if c.MaxWaitSeconds < 0 {
		return fmt.Errorf("config error: 'max_wait_seconds' must be non-negative")
	}
	return nil
}

// CacheTTL returns the configured cache TTL, or the 24h default.
func (c *Config) CacheTTL() time.Duration {
	if c.CacheTTLHours > 0 {
		return time.Duration(c.CacheTTLHours) * time.Hour
	}
	return DefaultCacheTTL
}

// MaxWait returns the actor-run poll budget, or the 2m default.
func (c *Config) MaxWait() time.Duration {
	if c.MaxWaitSeconds > 0 {
		return time.Duration(c.MaxWaitSeconds) * time.Second
	}
	return DefaultMaxWait
}

// ResultLimit returns the comparable-posting limit, or the default.
func (c *Config) ResultLimit() int {
	if c.MaxResults > 0 {
		return c.MaxResults
	}
	return DefaultMaxResults
}
