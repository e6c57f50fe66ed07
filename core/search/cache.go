// ABOUTME: Result cache memoizes merged search results behind the Cache interface
// ABOUTME: Keys are derived from the normalized query and canonical vendor selection

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"pricescout-api/core/domain"
	"pricescout-api/core/interfaces"
)

// resultCache memoizes completed aggregations for a bounded time window.
// Entries are keyed order-independently on the vendor selection so that
// vendors=a,b and vendors=b,a hit the same entry. Cache operations are
// short and in-memory; they never block on vendor I/O.
type resultCache struct {
	cache interfaces.Cache
	ttl   time.Duration
}

func newResultCache(cache interfaces.Cache, ttl time.Duration) *resultCache {
	return &resultCache{cache: cache, ttl: ttl}
}

// cacheKey derives the cache key from the normalized query and the
// canonicalized (sorted, deduplicated) vendor identifiers.
func cacheKey(query string, vendors []string) string {
	ids := make([]string, 0, len(vendors))
	seen := make(map[string]bool, len(vendors))
	for _, v := range vendors {
		if !seen[v] {
			seen[v] = true
			ids = append(ids, v)
		}
	}
	sort.Strings(ids)

	normalized := strings.ToLower(strings.TrimSpace(query))
	return fmt.Sprintf("search:results:%s:%s", normalized, strings.Join(ids, ","))
}

// get returns the cached result list for the query and vendor selection,
// or false when there is no valid entry. A corrupt entry is treated as a
// miss and discarded.
func (c *resultCache) get(ctx context.Context, query string, vendors []string) ([]domain.ScrapeResult, bool) {
	if c.cache == nil {
		return nil, false
	}

	key := cacheKey(query, vendors)
	data, err := c.cache.Get(ctx, key)
	if err != nil || data == nil {
		return nil, false
	}

	var results []domain.ScrapeResult
	if err := json.Unmarshal(data, &results); err != nil {
		_ = c.cache.Delete(ctx, key)
		return nil, false
	}
	return results, true
}

// set stores the merged result list. Empty lists are never cached so a
// transiently failing vendor does not poison subsequent retries.
func (c *resultCache) set(ctx context.Context, query string, vendors []string, results []domain.ScrapeResult) {
	if c.cache == nil || len(results) == 0 {
		return
	}

	data, err := json.Marshal(results)
	if err != nil {
		return
	}
	_ = c.cache.Set(ctx, cacheKey(query, vendors), data, c.ttl)
}
