// ABOUTME: Response DTOs for the search endpoint
// ABOUTME: Defines the externally visible, field-exact response shape

package responses

// ScrapeResultResponse represents one product in API responses
type ScrapeResultResponse struct {
	Vendor      string  `json:"vendor" doc:"Vendor that produced this result"`
	Title       string  `json:"title" doc:"Product title"`
	Price       float64 `json:"price" doc:"Product price"`
	Rating      float64 `json:"rating,omitempty" doc:"Product rating, if the vendor provides one"`
	Image       string  `json:"image,omitempty" doc:"Product image URL"`
	URL         string  `json:"url,omitempty" doc:"Product detail page URL"`
	Description string  `json:"description,omitempty" doc:"Product description"`
}

// VendorErrorResponse represents one failed vendor in API responses
type VendorErrorResponse struct {
	Vendor  string `json:"vendor" doc:"Vendor that failed"`
	Message string `json:"message" doc:"Human-readable failure description"`
}

// VendorTimingResponse represents one vendor's timing in API responses
type VendorTimingResponse struct {
	Vendor      string `json:"vendor" doc:"Vendor that was invoked"`
	DurationMs  int64  `json:"durationMs" doc:"Invocation duration in milliseconds"`
	ResultCount int    `json:"resultCount" doc:"Number of results returned (0 on failure)"`
}

// SearchTimingResponse summarizes request timing
type SearchTimingResponse struct {
	TotalMs   int64                  `json:"totalMs" doc:"Total request duration in milliseconds"`
	PerVendor []VendorTimingResponse `json:"perVendor" doc:"Per-vendor timings; empty on cache hits"`
}

// SearchResponse is the aggregate search result returned to the caller
type SearchResponse struct {
	Success      bool                   `json:"success" doc:"False only when every invoked vendor failed and nothing was returned"`
	Query        string                 `json:"query" doc:"The original query"`
	TotalResults int                    `json:"totalResults" doc:"Number of merged results"`
	Results      []ScrapeResultResponse `json:"results" doc:"Merged results, sorted ascending by price"`
	Errors       []VendorErrorResponse  `json:"errors" doc:"One entry per failed vendor"`
	Timing       SearchTimingResponse   `json:"timing" doc:"Request timing summary"`
	Cached       bool                   `json:"cached" doc:"True when served from the result cache"`
	Timestamp    string                 `json:"timestamp" doc:"Response construction time, ISO-8601"`
}
