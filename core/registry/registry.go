// ABOUTME: Scraper registry resolves requested vendor identifiers to scrapers
// ABOUTME: Holds the closed set of vendors registered at startup in canonical order

package registry

import (
	"sort"

	"pricescout-api/core/interfaces"
)

// Registry holds the closed set of vendor scrapers known to the process.
// Scrapers are registered once at startup; the registration order is the
// canonical invocation order used for merging and timing output.
type Registry struct {
	scrapers []interfaces.VendorScraper
	byVendor map[string]int
}

// New creates a registry from the given scrapers. Registration order is
// preserved as the canonical order. A scraper with a duplicate vendor
// identifier replaces the earlier registration in place.
func New(scrapers ...interfaces.VendorScraper) *Registry {
	r := &Registry{byVendor: make(map[string]int)}
	for _, s := range scrapers {
		r.Register(s)
	}
	return r
}

// Register adds a scraper to the registry. Not safe for concurrent use;
// call during startup only.
func (r *Registry) Register(s interfaces.VendorScraper) {
	if idx, ok := r.byVendor[s.Vendor()]; ok {
		r.scrapers[idx] = s
		return
	}
	r.byVendor[s.Vendor()] = len(r.scrapers)
	r.scrapers = append(r.scrapers, s)
}

// Resolve returns the scrapers to invoke for the given selection, in
// canonical order regardless of the order identifiers were supplied in.
// An empty selection resolves to the full registered set. Unknown
// identifiers are silently ignored.
func (r *Registry) Resolve(selection []string) []interfaces.VendorScraper {
	if len(selection) == 0 {
		out := make([]interfaces.VendorScraper, len(r.scrapers))
		copy(out, r.scrapers)
		return out
	}

	requested := make(map[string]bool, len(selection))
	for _, id := range selection {
		requested[id] = true
	}

	out := make([]interfaces.VendorScraper, 0, len(r.scrapers))
	for _, s := range r.scrapers {
		if requested[s.Vendor()] {
			out = append(out, s)
		}
	}
	return out
}

// Vendors returns all registered vendor identifiers in canonical order.
func (r *Registry) Vendors() []string {
	ids := make([]string, len(r.scrapers))
	for i, s := range r.scrapers {
		ids[i] = s.Vendor()
	}
	return ids
}

// CanonicalSelection returns the sorted, deduplicated vendor identifiers
// the selection resolves to. The result is stable across request-supplied
// orderings, making it suitable for cache key derivation.
func (r *Registry) CanonicalSelection(selection []string) []string {
	resolved := r.Resolve(selection)
	ids := make([]string, len(resolved))
	for i, s := range resolved {
		ids[i] = s.Vendor()
	}
	sort.Strings(ids)
	return ids
}
