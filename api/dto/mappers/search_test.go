package mappers

import (
	"testing"
	"time"

	"pricescout-api/core/domain"
)

func TestToSearchResponse_MapsFields(t *testing.T) {
	outcome := domain.SearchOutcome{
		Results: []domain.ScrapeResult{
			{Vendor: "shopstream", Title: "Mouse", Price: 10.0, Rating: 4.5},
			{Vendor: "bookbarn", Title: "Mouse Mat", Price: 25.0},
		},
		Errors: []domain.VendorError{
			{Vendor: "marketgrid", Message: "timeout"},
		},
		Timings: []domain.VendorTiming{
			{Vendor: "shopstream", DurationMs: 120, ResultCount: 1},
			{Vendor: "bookbarn", DurationMs: 340, ResultCount: 1},
			{Vendor: "marketgrid", DurationMs: 5000, ResultCount: 0},
		},
	}

	resp := ToSearchResponse("wireless mouse", outcome, 5010)

	if !resp.Success {
		t.Error("Success should be true with results present")
	}
	if resp.Query != "wireless mouse" {
		t.Errorf("Query = %q", resp.Query)
	}
	if resp.TotalResults != 2 {
		t.Errorf("TotalResults = %d, want 2", resp.TotalResults)
	}
	if len(resp.Results) != 2 || resp.Results[0].Vendor != "shopstream" {
		t.Errorf("Results = %+v", resp.Results)
	}
	if len(resp.Errors) != 1 || resp.Errors[0].Vendor != "marketgrid" {
		t.Errorf("Errors = %+v", resp.Errors)
	}
	if resp.Timing.TotalMs != 5010 {
		t.Errorf("Timing.TotalMs = %d, want 5010", resp.Timing.TotalMs)
	}
	if len(resp.Timing.PerVendor) != 3 {
		t.Errorf("PerVendor has %d entries, want 3", len(resp.Timing.PerVendor))
	}
	if resp.Cached {
		t.Error("Cached should be false")
	}
}

func TestToSearchResponse_EmptyOutcomeHasEmptySlices(t *testing.T) {
	resp := ToSearchResponse("anything", domain.SearchOutcome{}, 3)

	if resp.Results == nil {
		t.Error("Results should be an empty slice, not nil")
	}
	if resp.Errors == nil {
		t.Error("Errors should be an empty slice, not nil")
	}
	if resp.Timing.PerVendor == nil {
		t.Error("PerVendor should be an empty slice, not nil")
	}
	if resp.Success {
		t.Error("Success should be false for an empty, vendor-less outcome")
	}
}

func TestToSearchResponse_CachedOutcome(t *testing.T) {
	outcome := domain.SearchOutcome{
		Results: []domain.ScrapeResult{{Vendor: "shopstream", Price: 1.0}},
		Errors:  []domain.VendorError{},
		Timings: []domain.VendorTiming{},
		Cached:  true,
	}

	resp := ToSearchResponse("mouse", outcome, 1)

	if !resp.Cached {
		t.Error("Cached should be true")
	}
	if len(resp.Timing.PerVendor) != 0 {
		t.Error("PerVendor should be empty on a cache hit")
	}
	if !resp.Success {
		t.Error("cached responses are successful")
	}
}

func TestToSearchResponse_TimestampIsRFC3339(t *testing.T) {
	resp := ToSearchResponse("mouse", domain.SearchOutcome{}, 0)

	if _, err := time.Parse(time.RFC3339, resp.Timestamp); err != nil {
		t.Errorf("Timestamp %q is not RFC3339: %v", resp.Timestamp, err)
	}
}
