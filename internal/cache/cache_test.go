package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/market-intel/internal/types"
)

func samplePostings() []types.ComparablePosting {
	return []types.ComparablePosting{
		{Title: "Senior Engineer", Company: "Acme", Salary: "$150k - $180k"},
		{Title: "Senior Engineer", Company: "Globex"},
	}
}

func TestMemory_PutGet(t *testing.T) {
	m := NewMemory(0)

	_, ok := m.Get("Senior Engineer", "New York")
	assert.False(t, ok, "empty cache should miss")

	m.Put("Senior Engineer", "New York", samplePostings())

	got, ok := m.Get("Senior Engineer", "New York")
	require.True(t, ok)
	assert.Equal(t, samplePostings(), got)
}

func TestMemory_KeyNormalization(t *testing.T) {
	m := NewMemory(0)
	m.Put("Senior Engineer", "New York", samplePostings())

	got, ok := m.Get("  senior   ENGINEER ", "new york")
	require.True(t, ok, "lookups should be case and whitespace insensitive")
	assert.Len(t, got, 2)

	_, ok = m.Get("Senior Engineer", "Boston")
	assert.False(t, ok, "different location is a different key")
}

func TestMemory_TTLExpiry(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemoryWithClock(24*time.Hour, func() time.Time { return now })

	m.Put("Data Engineer", "Remote", samplePostings())

	now = now.Add(23 * time.Hour)
	_, ok := m.Get("Data Engineer", "Remote")
	assert.True(t, ok, "entry within TTL should hit")

	now = now.Add(2 * time.Hour)
	_, ok = m.Get("Data Engineer", "Remote")
	assert.False(t, ok, "entry past TTL should miss")

	assert.Equal(t, 0, m.Stats().Entries, "expired entry should be deleted on read")
}

func TestMemory_PutResetsAge(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemoryWithClock(time.Hour, func() time.Time { return now })

	m.Put("Data Engineer", "Remote", samplePostings())
	now = now.Add(50 * time.Minute)
	m.Put("Data Engineer", "Remote", samplePostings())
	now = now.Add(30 * time.Minute)

	_, ok := m.Get("Data Engineer", "Remote")
	assert.True(t, ok, "re-put should restart the TTL clock")
}

func TestMemory_Stats(t *testing.T) {
	m := NewMemory(0)

	m.Get("a", "b")
	m.Put("a", "b", nil)
	m.Get("a", "b")
	m.Get("c", "d")

	stats := m.Stats()
	assert.Equal(t, 1, stats.Entries)
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(2), stats.Misses)
}

func TestMemory_Clear(t *testing.T) {
	m := NewMemory(0)
	m.Put("a", "b", samplePostings())
	m.Clear()

	_, ok := m.Get("a", "b")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Stats().Entries)
}

func TestKey(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		location string
		expected string
	}{
		{"simple", "Engineer", "Austin", "engineer-austin"},
		{"collapses whitespace", "Senior  Data\tEngineer", "New  York", "senior-data-engineer-new-york"},
		{"lowercases", "CTO", "SF", "cto-sf"},
		{"empty location", "Engineer", "", "engineer-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Key(tt.title, tt.location))
		})
	}
}
