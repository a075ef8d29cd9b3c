// Package cache provides the process-wide result cache that shields the
// market-search client from redundant paid calls. Entries are read-mostly
// and cost-driven rather than correctness-driven; staleness up to the TTL
// is acceptable.
package cache

import (
	"strings"
	"sync"
	"time"

	"github.com/jonathan/market-intel/internal/types"
)

// DefaultTTL is the entry time-to-live.
const DefaultTTL = 24 * time.Hour

// Stats is a snapshot of cache activity.
type Stats struct {
	Entries int   `json:"entries"`
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
}

// Store is the cache contract. A miss is a normal control-flow outcome,
// never an error.
type Store interface {
	Get(title, location string) ([]types.ComparablePosting, bool)
	Put(title, location string, postings []types.ComparablePosting)
	Clear()
	Stats() Stats
}

type entry struct {
	postings  []types.ComparablePosting
	createdAt time.Time
}

// Memory is the mutex-guarded in-memory Store. Expired entries are deleted
// lazily on read; there is no background sweep.
type Memory struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
	hits    int64
	misses  int64
}

// NewMemory creates a Memory cache with the given TTL (DefaultTTL when
// zero).
func NewMemory(ttl time.Duration) *Memory {
	return NewMemoryWithClock(ttl, time.Now)
}

// NewMemoryWithClock allows tests to substitute the clock.
func NewMemoryWithClock(ttl time.Duration, now func() time.Time) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Memory{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     now,
	}
}

// Get returns the cached postings for (title, location), or a miss when no
// entry exists or the entry has outlived the TTL. An expired entry is
// removed on the spot.
func (m *Memory) Get(title, location string) ([]types.ComparablePosting, bool) {
	key := Key(title, location)

	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		m.misses++
		return nil, false
	}

	if m.now().Sub(e.createdAt) > m.ttl {
		delete(m.entries, key)
		m.misses++
		return nil, false
	}

	m.hits++
	return e.postings, true
}

// Put stores postings for (title, location), resetting the entry's age.
func (m *Memory) Put(title, location string, postings []types.ComparablePosting) {
	key := Key(title, location)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = entry{postings: postings, createdAt: m.now()}
}

// Clear drops every entry.
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make(map[string]entry)
}

// Stats returns a snapshot of entry and hit/miss counts.
func (m *Memory) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Stats{Entries: len(m.entries), Hits: m.hits, Misses: m.misses}
}

// Key builds the normalized cache key: lowercased, whitespace-collapsed,
// hyphen-joined title and location.
func Key(title, location string) string {
	return normalizePart(title) + "-" + normalizePart(location)
}

func normalizePart(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}
