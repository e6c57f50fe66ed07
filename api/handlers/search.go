// ABOUTME: Search handler exposing the price aggregation endpoint
// ABOUTME: Validates raw input and delegates to the search orchestrator

package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"pricescout-api/api/dto/mappers"
	"pricescout-api/api/dto/responses"
	"pricescout-api/core/domain"
	"pricescout-api/core/interfaces"
)

// SearchService is the orchestrator contract the handler depends on.
type SearchService interface {
	Search(ctx context.Context, query string, selection []string) (domain.SearchOutcome, error)
}

// SearchHandler handles product search requests
type SearchHandler struct {
	service SearchService
	timeout time.Duration
	logger  interfaces.Logger
}

// NewSearchHandler creates a new search handler. timeout bounds the whole
// request including all vendor scrapes.
func NewSearchHandler(service SearchService, timeout time.Duration, logger interfaces.Logger) *SearchHandler {
	return &SearchHandler{
		service: service,
		timeout: timeout,
		logger:  logger,
	}
}

// RegisterRoutes registers search routes
func (h *SearchHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "searchProducts",
		Method:      http.MethodGet,
		Path:        "/search",
		Summary:     "Search products across vendors",
		Description: "Queries all selected vendors concurrently and returns a merged, price-sorted result list with per-vendor diagnostics",
		Tags:        []string{"Search"},
	}, h.Search)
}

// SearchInput defines the input for product search
type SearchInput struct {
	Query   string `query:"q" doc:"Search query"`
	Vendors string `query:"vendors,omitempty" doc:"Comma-separated vendor identifiers; unknown identifiers are ignored"`
}

// SearchOutput defines the output for product search
type SearchOutput struct {
	Body responses.SearchResponse
}

// Search handles the GET /search endpoint
func (h *SearchHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return nil, huma.Error400BadRequest("query cannot be empty")
	}

	selection := splitVendors(input.Vendors)

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	start := time.Now()
	outcome, err := h.service.Search(ctx, query, selection)
	if err != nil {
		if h.logger != nil {
			h.logger.Error("search request failed", map[string]interface{}{
				"query": query,
				"error": err.Error(),
			})
		}
		return nil, toHumaError(err)
	}

	return &SearchOutput{
		Body: mappers.ToSearchResponse(query, outcome, time.Since(start).Milliseconds()),
	}, nil
}

// splitVendors parses the comma-separated vendors parameter. Tokens keep
// the case they were supplied in; blank tokens are dropped.
func splitVendors(raw string) []string {
	if raw == "" {
		return nil
	}

	tokens := strings.Split(raw, ",")
	selection := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok = strings.TrimSpace(tok); tok != "" {
			selection = append(selection, tok)
		}
	}
	return selection
}
