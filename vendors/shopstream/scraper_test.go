package shopstream

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	coreerrors "pricescout-api/core/errors"
	"pricescout-api/core/interfaces"
)

// mockHTTPClient is a func-backed HTTPClient
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	return m.getFunc(ctx, url)
}

// mockResponse is a canned HTTP response
type mockResponse struct {
	statusCode int
	body       string
}

func (m *mockResponse) StatusCode() int { return m.statusCode }

func (m *mockResponse) Body() io.ReadCloser { return io.NopCloser(strings.NewReader(m.body)) }

func (m *mockResponse) Header(key string) string { return "" }

func TestVendor(t *testing.T) {
	s := New(nil, "")

	if s.Vendor() != "shopstream" {
		t.Errorf("Vendor() = %s, want shopstream", s.Vendor())
	}
}

func TestScrape_MapsProducts(t *testing.T) {
	body := `{
		"products": [
			{
				"name": "Wireless Mouse",
				"price": 24.99,
				"rating": 4.5,
				"imageUrl": "https://cdn.example.com/mouse.jpg",
				"productUrl": "https://shopstream.example.com/p/123",
				"description": "A mouse without wires"
			}
		]
	}`
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			if !strings.Contains(url, "q=wireless+mouse") {
				t.Errorf("request URL missing escaped query: %s", url)
			}
			return &mockResponse{statusCode: 200, body: body}, nil
		},
	}
	s := New(client, "https://api.shopstream.example.com")

	results, err := s.Scrape(context.Background(), "wireless mouse")

	if err != nil {
		t.Fatalf("Scrape returned error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	r := results[0]
	if r.Vendor != "shopstream" {
		t.Errorf("Vendor = %s, want shopstream", r.Vendor)
	}
	if r.Title != "Wireless Mouse" || r.Price != 24.99 || r.Rating != 4.5 {
		t.Errorf("result = %+v", r)
	}
}

func TestScrape_EmptyProductList(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: `{"products": []}`}, nil
		},
	}
	s := New(client, "https://api.shopstream.example.com")

	results, err := s.Scrape(context.Background(), "nothing")

	if err != nil {
		t.Fatalf("Scrape returned error: %v", err)
	}
	if results == nil {
		t.Error("Scrape should return empty slice, not nil")
	}
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}

func TestScrape_NonOKStatus(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 503, body: ""}, nil
		},
	}
	s := New(client, "https://api.shopstream.example.com")

	_, err := s.Scrape(context.Background(), "mouse")

	if err == nil {
		t.Fatal("Scrape should return error for 503")
	}
	if !coreerrors.IsExternalAPI(err) {
		t.Errorf("error = %v, want ExternalAPIError", err)
	}
}

func TestScrape_TransportError(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return nil, errors.New("connection refused")
		},
	}
	s := New(client, "https://api.shopstream.example.com")

	_, err := s.Scrape(context.Background(), "mouse")

	if err == nil {
		t.Fatal("Scrape should propagate transport error")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("error = %v, should wrap cause", err)
	}
}

func TestScrape_MalformedJSON(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: `{broken`}, nil
		},
	}
	s := New(client, "https://api.shopstream.example.com")

	if _, err := s.Scrape(context.Background(), "mouse"); err == nil {
		t.Error("Scrape should return error for malformed JSON")
	}
}
