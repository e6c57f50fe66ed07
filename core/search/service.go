// ABOUTME: Search orchestrator fans out to vendor scrapers and merges results
// ABOUTME: Provides failure isolation, per-vendor timing, and result memoization

package search

import (
	"context"
	"sort"
	"sync"
	"time"

	"pricescout-api/core/domain"
	coreerrors "pricescout-api/core/errors"
	"pricescout-api/core/interfaces"
	"pricescout-api/core/registry"
)

const fallbackErrorMessage = "vendor request failed"

// Config holds orchestrator settings.
type Config struct {
	// CacheTTL is how long a merged result list stays valid
	CacheTTL time.Duration
}

// Service coordinates concurrent vendor scrapes for one query and merges
// their results into a single price-sorted list. Vendor failures are
// isolated: a failing vendor is recorded as data and never aborts or
// delays its siblings.
type Service struct {
	deps     interfaces.Dependencies
	registry *registry.Registry
	cache    *resultCache
	metrics  *Metrics
}

// NewService creates a search service over the given registry.
func NewService(deps interfaces.Dependencies, reg *registry.Registry, cfg Config) *Service {
	return &Service{
		deps:     deps,
		registry: reg,
		cache:    newResultCache(deps.Cache, cfg.CacheTTL),
	}
}

// WithMetrics attaches Prometheus collectors to the service.
func (s *Service) WithMetrics(m *Metrics) *Service {
	s.metrics = m
	return s
}

// Search resolves the vendor selection, serves from the result cache when
// possible, and otherwise fans out to every selected scraper concurrently.
// The outcome always carries exactly one timing per invoked vendor, and the
// merged list is stably sorted ascending by price in invocation order.
func (s *Service) Search(ctx context.Context, query string, selection []string) (domain.SearchOutcome, error) {
	if err := validateQuery(query); err != nil {
		return domain.SearchOutcome{}, err
	}

	scrapers := s.registry.Resolve(selection)
	vendors := s.registry.CanonicalSelection(selection)

	if results, ok := s.cache.get(ctx, query, vendors); ok {
		s.metrics.IncSearch("hit")
		s.logDebug("result cache hit", query, len(results))
		return domain.SearchOutcome{
			Results: results,
			Errors:  []domain.VendorError{},
			Timings: []domain.VendorTiming{},
			Cached:  true,
		}, nil
	}
	s.metrics.IncSearch("miss")

	outcome := s.fanOut(ctx, query, scrapers)

	s.cache.set(ctx, query, vendors, outcome.Results)
	s.metrics.ObserveMerged(len(outcome.Results))
	s.logDebug("search completed", query, len(outcome.Results))

	return outcome, nil
}

// fanOut launches one goroutine per scraper and waits for all of them to
// reach a terminal state. Each goroutine writes only to its own index, so
// the merged output follows canonical invocation order regardless of
// completion order.
func (s *Service) fanOut(ctx context.Context, query string, scrapers []interfaces.VendorScraper) domain.SearchOutcome {
	batches := make([][]domain.ScrapeResult, len(scrapers))
	failures := make([]*domain.VendorError, len(scrapers))
	timings := make([]domain.VendorTiming, len(scrapers))

	var wg sync.WaitGroup
	for i, scraper := range scrapers {
		wg.Add(1)
		go func(idx int, sc interfaces.VendorScraper) {
			defer wg.Done()

			start := time.Now()
			results, err := sc.Scrape(ctx, query)
			elapsed := time.Since(start)

			if err != nil {
				msg := err.Error()
				if msg == "" {
					msg = fallbackErrorMessage
				}
				failures[idx] = &domain.VendorError{Vendor: sc.Vendor(), Message: msg}
				timings[idx] = domain.VendorTiming{
					Vendor:     sc.Vendor(),
					DurationMs: elapsed.Milliseconds(),
				}
				s.metrics.ObserveVendor(sc.Vendor(), "error", elapsed)
				s.logWarn("vendor scrape failed", sc.Vendor(), msg)
				return
			}

			batches[idx] = results
			timings[idx] = domain.VendorTiming{
				Vendor:      sc.Vendor(),
				DurationMs:  elapsed.Milliseconds(),
				ResultCount: len(results),
			}
			s.metrics.ObserveVendor(sc.Vendor(), "ok", elapsed)
		}(i, scraper)
	}
	wg.Wait()

	merged := make([]domain.ScrapeResult, 0)
	for _, batch := range batches {
		merged = append(merged, batch...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Price < merged[j].Price
	})

	vendorErrors := make([]domain.VendorError, 0)
	for _, f := range failures {
		if f != nil {
			vendorErrors = append(vendorErrors, *f)
		}
	}

	return domain.SearchOutcome{
		Results: merged,
		Errors:  vendorErrors,
		Timings: timings,
	}
}

// validateQuery rejects malformed queries before any scraper is invoked.
func validateQuery(query string) error {
	if query == "" {
		return &coreerrors.ValidationError{Field: "q", Message: "search query cannot be empty"}
	}
	return nil
}

func (s *Service) logDebug(msg, query string, results int) {
	if s.deps.Logger == nil {
		return
	}
	s.deps.Logger.Debug(msg, map[string]interface{}{
		"query":   query,
		"results": results,
	})
}

func (s *Service) logWarn(msg, vendor, detail string) {
	if s.deps.Logger == nil {
		return
	}
	s.deps.Logger.Warn(msg, map[string]interface{}{
		"vendor": vendor,
		"error":  detail,
	})
}
