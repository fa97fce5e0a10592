// Package cache provides a concurrency-safe in-memory TTL cache shared by
// the weather resolver, catalog, and image enrichment.
package cache

import (
	"sync"
	"time"
)

// Default TTLs for the data classes the service caches.
const (
	TTLWeather   = 30 * time.Minute
	TTLLocations = 24 * time.Hour
	TTLImages    = 7 * 24 * time.Hour
	TTLOverpass  = 7 * 24 * time.Hour
)

type entry struct {
	value  interface{}
	expiry time.Time
}

// Stats is a point-in-time view of cache performance counters.
type Stats struct {
	Size      int   `json:"size"`
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
}

// Memory is a concurrency-safe keyed TTL cache. Expired entries are
// evicted lazily on read.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry

	hits      int64
	misses    int64
	evictions int64
}

// NewMemory creates an empty cache.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]entry),
	}
}

// Get returns the value stored under key, or false if the key is absent
// or its entry has expired.
func (m *Memory) Get(key string) (interface{}, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		m.mu.Lock()
		m.misses++
		m.mu.Unlock()
		return nil, false
	}

	if time.Now().After(e.expiry) {
		m.mu.Lock()
		delete(m.entries, key)
		m.misses++
		m.evictions++
		m.mu.Unlock()
		return nil, false
	}

	m.mu.Lock()
	m.hits++
	m.mu.Unlock()
	return e.value, true
}

// Set stores value under key for ttl. A non-positive ttl stores nothing.
func (m *Memory) Set(key string, value interface{}, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = entry{
		value:  value,
		expiry: time.Now().Add(ttl),
	}
}

// Delete removes a single key.
func (m *Memory) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
}

// Flush removes every entry.
func (m *Memory) Flush() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]entry)
}

// Stats returns current counters.
func (m *Memory) Stats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Stats{
		Size:      len(m.entries),
		Hits:      m.hits,
		Misses:    m.misses,
		Evictions: m.evictions,
	}
}
