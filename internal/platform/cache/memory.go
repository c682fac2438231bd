package cache

import (
	"sync"
	"time"
)

// Entry is one cached payload keyed by request fingerprint. Entries are
// retained past their TTL so an upstream outage can degrade to stale data
// instead of an empty page.
type Entry struct {
	Payload   any
	FetchedAt time.Time
	Tier      Tier
}

// MemoryStore is a mutex-guarded map of fingerprint to entry. It never evicts:
// the fingerprint space is the fixed endpoint/parameter set of the
// dashboard, not user input, so growth is bounded by construction.
// Protecting against unbounded input is an explicit non-goal.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]Entry)}
}

// Get returns the live entry for fingerprint, if any.
func (m *MemoryStore) Get(fingerprint string) (Entry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[fingerprint]
	return e, ok
}

// Set stores the entry, replacing any previous one for the fingerprint.
func (m *MemoryStore) Set(fingerprint string, e Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[fingerprint] = e
}

// Clear drops every entry.
func (m *MemoryStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]Entry)
}

// Len returns the number of live entries.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
