// ABOUTME: BookBarn vendor scraper crawling its HTML search results with colly
// ABOUTME: Extracts product cards from the catalog listing page

package bookbarn

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gocolly/colly/v2"

	"pricescout-api/core/domain"
	coreerrors "pricescout-api/core/errors"
	"pricescout-api/pkg/utils/parse"
)

const (
	vendorID       = "bookbarn"
	userAgent      = "PriceScoutAPI/1.0"
	defaultTimeout = 15 * time.Second
)

// Scraper crawls the BookBarn catalog search page.
type Scraper struct {
	baseURL   string
	host      string
	timeout   time.Duration
	transport http.RoundTripper
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithTransport overrides the HTTP transport. Used by tests to install a
// mock transport.
func WithTransport(rt http.RoundTripper) Option {
	return func(s *Scraper) {
		s.transport = rt
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Scraper) {
		s.timeout = d
	}
}

// New creates a BookBarn scraper against the given catalog base URL.
func New(baseURL string, opts ...Option) (*Scraper, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("base url must include a host")
	}

	s := &Scraper{
		baseURL: strings.TrimRight(baseURL, "/"),
		host:    parsed.Host,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Vendor returns the vendor identifier.
func (s *Scraper) Vendor() string {
	return vendorID
}

// Scrape fetches the BookBarn search results page for the query and
// extracts all product cards. A fresh collector is built per call so
// concurrent requests share no state.
func (s *Scraper) Scrape(ctx context.Context, query string) ([]domain.ScrapeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	collector := colly.NewCollector(
		colly.AllowedDomains(s.host),
		colly.UserAgent(userAgent),
	)
	collector.SetRequestTimeout(s.requestTimeout(ctx))
	if s.transport != nil {
		collector.WithTransport(s.transport)
	}

	var mu sync.Mutex
	var results []domain.ScrapeResult
	var scrapeErr error

	collector.OnHTML("li.product-card", func(e *colly.HTMLElement) {
		result := extractProduct(e)
		if result == nil {
			return
		}
		mu.Lock()
		results = append(results, *result)
		mu.Unlock()
	})

	collector.OnError(func(r *colly.Response, err error) {
		status := 0
		if r != nil {
			status = r.StatusCode
		}
		mu.Lock()
		if scrapeErr == nil {
			scrapeErr = &coreerrors.ExternalAPIError{
				Vendor:     vendorID,
				StatusCode: status,
				Message:    err.Error(),
			}
		}
		mu.Unlock()
	})

	searchURL := fmt.Sprintf("%s/search?q=%s", s.baseURL, url.QueryEscape(query))
	visitErr := collector.Visit(searchURL)
	collector.Wait()

	// OnError captures a typed error with the response status; prefer it
	// over the raw error Visit surfaces for the same failure.
	if scrapeErr != nil {
		return nil, scrapeErr
	}
	if visitErr != nil {
		return nil, coreerrors.WrapError(visitErr, "bookbarn visit")
	}
	if results == nil {
		results = []domain.ScrapeResult{}
	}
	return results, nil
}

func (s *Scraper) requestTimeout(ctx context.Context) time.Duration {
	timeout := s.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	return timeout
}

func extractProduct(e *colly.HTMLElement) *domain.ScrapeResult {
	title := strings.TrimSpace(e.ChildAttr("h3 a", "title"))
	if title == "" {
		title = strings.TrimSpace(e.ChildText("h3 a"))
	}
	if title == "" {
		return nil
	}

	href := e.ChildAttr("h3 a", "href")
	productURL := ""
	if href != "" {
		productURL = e.Request.AbsoluteURL(href)
	}

	image := ""
	if src := e.ChildAttr("img.thumb", "src"); src != "" {
		image = e.Request.AbsoluteURL(src)
	}

	return &domain.ScrapeResult{
		Vendor:      vendorID,
		Title:       title,
		Price:       parse.PriceOrZero(e.ChildText("p.price")),
		Rating:      parse.RatingOrZero(e.ChildAttr("p.rating", "data-rating")),
		Image:       image,
		URL:         productURL,
		Description: strings.TrimSpace(e.ChildText("p.blurb")),
	}
}
