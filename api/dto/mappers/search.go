// ABOUTME: Mappers for converting search outcomes to API DTOs
// ABOUTME: The response assembler - a pure function plus timestamp generation

package mappers

import (
	"time"

	"pricescout-api/api/dto/responses"
	"pricescout-api/core/domain"
)

// ToSearchResponse assembles the externally visible response from the
// orchestrator's outcome. It has no side effects beyond reading the clock.
func ToSearchResponse(query string, outcome domain.SearchOutcome, totalMs int64) responses.SearchResponse {
	results := make([]responses.ScrapeResultResponse, 0, len(outcome.Results))
	for _, r := range outcome.Results {
		results = append(results, responses.ScrapeResultResponse{
			Vendor:      r.Vendor,
			Title:       r.Title,
			Price:       r.Price,
			Rating:      r.Rating,
			Image:       r.Image,
			URL:         r.URL,
			Description: r.Description,
		})
	}

	vendorErrors := make([]responses.VendorErrorResponse, 0, len(outcome.Errors))
	for _, e := range outcome.Errors {
		vendorErrors = append(vendorErrors, responses.VendorErrorResponse{
			Vendor:  e.Vendor,
			Message: e.Message,
		})
	}

	perVendor := make([]responses.VendorTimingResponse, 0, len(outcome.Timings))
	for _, t := range outcome.Timings {
		perVendor = append(perVendor, responses.VendorTimingResponse{
			Vendor:      t.Vendor,
			DurationMs:  t.DurationMs,
			ResultCount: t.ResultCount,
		})
	}

	return responses.SearchResponse{
		Success:      outcome.Success(),
		Query:        query,
		TotalResults: len(results),
		Results:      results,
		Errors:       vendorErrors,
		Timing: responses.SearchTimingResponse{
			TotalMs:   totalMs,
			PerVendor: perVendor,
		},
		Cached:    outcome.Cached,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
