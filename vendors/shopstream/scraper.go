// ABOUTME: ShopStream vendor scraper querying its JSON search API
// ABOUTME: Maps API product records to domain ScrapeResults

package shopstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"pricescout-api/core/domain"
	coreerrors "pricescout-api/core/errors"
	"pricescout-api/core/interfaces"
)

const vendorID = "shopstream"

// Scraper queries the ShopStream product search API.
type Scraper struct {
	client  interfaces.HTTPClient
	baseURL string
}

// New creates a ShopStream scraper against the given API base URL.
func New(client interfaces.HTTPClient, baseURL string) *Scraper {
	return &Scraper{client: client, baseURL: baseURL}
}

// Vendor returns the vendor identifier.
func (s *Scraper) Vendor() string {
	return vendorID
}

// Scrape searches the ShopStream API for the query.
func (s *Scraper) Scrape(ctx context.Context, query string) ([]domain.ScrapeResult, error) {
	apiURL := fmt.Sprintf("%s/v1/products/search?q=%s", s.baseURL, url.QueryEscape(query))

	resp, err := s.client.Get(ctx, apiURL)
	if err != nil {
		return nil, coreerrors.WrapError(err, "shopstream search")
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		return nil, &coreerrors.ExternalAPIError{
			Vendor:     vendorID,
			StatusCode: resp.StatusCode(),
			Message:    "search request rejected",
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, coreerrors.WrapError(err, "shopstream read response")
	}

	var apiResponse struct {
		Products []struct {
			Name        string  `json:"name"`
			Price       float64 `json:"price"`
			Rating      float64 `json:"rating"`
			ImageURL    string  `json:"imageUrl"`
			ProductURL  string  `json:"productUrl"`
			Description string  `json:"description"`
		} `json:"products"`
	}
	if err := json.Unmarshal(body, &apiResponse); err != nil {
		return nil, coreerrors.WrapError(err, "shopstream parse response")
	}

	results := make([]domain.ScrapeResult, 0, len(apiResponse.Products))
	for _, p := range apiResponse.Products {
		results = append(results, domain.ScrapeResult{
			Vendor:      vendorID,
			Title:       p.Name,
			Price:       p.Price,
			Rating:      p.Rating,
			Image:       p.ImageURL,
			URL:         p.ProductURL,
			Description: p.Description,
		})
	}
	return results, nil
}
