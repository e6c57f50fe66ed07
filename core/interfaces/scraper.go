package interfaces

import (
	"context"

	"pricescout-api/core/domain"
)

// VendorScraper is implemented by each vendor data source adapter.
// Scrapers are independent and share no state; one scraper failing must
// never affect another.
type VendorScraper interface {
	// Vendor returns the stable vendor identifier used in responses,
	// timings and cache keys.
	Vendor() string

	// Scrape searches the vendor for the given query and returns its
	// product records. It must respect ctx cancellation and must not
	// block past the request deadline.
	Scrape(ctx context.Context, query string) ([]domain.ScrapeResult, error)
}
