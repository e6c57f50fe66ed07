package search

import (
	"context"
	"sync"
	"time"

	"pricescout-api/core/domain"
)

// mockScraper is a func-backed VendorScraper for orchestrator tests
type mockScraper struct {
	vendor     string
	scrapeFunc func(ctx context.Context, query string) ([]domain.ScrapeResult, error)
}

func (m *mockScraper) Vendor() string {
	return m.vendor
}

func (m *mockScraper) Scrape(ctx context.Context, query string) ([]domain.ScrapeResult, error) {
	if m.scrapeFunc != nil {
		return m.scrapeFunc(ctx, query)
	}
	return nil, nil
}

// mockCache is an in-memory Cache with TTL handling for cache-aside tests
type mockCache struct {
	mu      sync.Mutex
	entries map[string]mockEntry
	sets    int
	gets    int
}

type mockEntry struct {
	value   []byte
	expires time.Time
	forever bool
}

func newMockCache() *mockCache {
	return &mockCache{entries: make(map[string]mockEntry)}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	e, ok := m.entries[key]
	if !ok {
		return nil, errKeyNotFound
	}
	if !e.forever && time.Now().After(e.expires) {
		delete(m.entries, key)
		return nil, errKeyNotFound
	}
	return e.value, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets++
	m.entries[key] = mockEntry{
		value:   value,
		expires: time.Now().Add(ttl),
		forever: ttl == 0,
	}
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func (m *mockCache) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

var errKeyNotFound = &keyNotFoundError{}

type keyNotFoundError struct{}

func (e *keyNotFoundError) Error() string { return "key not found" }
