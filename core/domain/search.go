// ABOUTME: Search domain models for multi-vendor price aggregation
// ABOUTME: Defines the result, error and timing records produced per vendor

package domain

// ScrapeResult represents a single product found by one vendor.
// It is immutable once produced by a scraper.
type ScrapeResult struct {
	// Vendor is the identifier of the vendor that produced this result
	Vendor string

	// Title is the product title as listed by the vendor
	Title string

	// Price is the product price in the vendor's canonical currency unit
	Price float64

	// Rating is the product rating (0 when the vendor provides none)
	Rating float64

	// Image is the product image URL, if any
	Image string

	// URL is the product detail page URL, if any
	URL string

	// Description is free-text product copy, if any
	Description string
}

// VendorError records a failed vendor invocation. A vendor produces either
// one VendorError or one result batch per request, never both.
type VendorError struct {
	// Vendor is the identifier of the failing vendor
	Vendor string

	// Message is a human-readable description of the failure
	Message string
}

// VendorTiming records how long one vendor invocation took. Exactly one
// timing is produced per invoked vendor regardless of outcome.
type VendorTiming struct {
	// Vendor is the identifier of the timed vendor
	Vendor string

	// DurationMs is the invocation duration in milliseconds
	DurationMs int64

	// ResultCount is the number of results returned (0 on failure)
	ResultCount int
}

// SearchOutcome is the orchestrator's aggregate output for one request.
type SearchOutcome struct {
	// Results is the merged result list, sorted ascending by price
	Results []ScrapeResult

	// Errors holds one entry per failed vendor
	Errors []VendorError

	// Timings holds one entry per invoked vendor, in invocation order
	Timings []VendorTiming

	// Cached reports whether Results was served from the result cache
	Cached bool
}

// Success reports whether the request as a whole succeeded: true when any
// results were merged, or when at least one invoked vendor did not fail.
func (o SearchOutcome) Success() bool {
	if len(o.Results) > 0 {
		return true
	}
	return len(o.Errors) < len(o.Timings)
}
