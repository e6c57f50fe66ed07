// ABOUTME: MarketGrid vendor scraper parsing its HTML results page with goquery
// ABOUTME: Extracts result tiles and strips markup from product descriptions

package marketgrid

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"pricescout-api/core/domain"
	coreerrors "pricescout-api/core/errors"
	"pricescout-api/core/interfaces"
	htmlutil "pricescout-api/pkg/utils/html"
	"pricescout-api/pkg/utils/parse"
)

const vendorID = "marketgrid"

// Scraper fetches and parses MarketGrid search result pages.
type Scraper struct {
	client  interfaces.HTTPClient
	baseURL string
}

// New creates a MarketGrid scraper against the given site base URL.
func New(client interfaces.HTTPClient, baseURL string) *Scraper {
	return &Scraper{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

// Vendor returns the vendor identifier.
func (s *Scraper) Vendor() string {
	return vendorID
}

// Scrape fetches the MarketGrid results page for the query and extracts
// every result tile.
func (s *Scraper) Scrape(ctx context.Context, query string) ([]domain.ScrapeResult, error) {
	pageURL := fmt.Sprintf("%s/results?query=%s", s.baseURL, url.QueryEscape(query))

	resp, err := s.client.Get(ctx, pageURL)
	if err != nil {
		return nil, coreerrors.WrapError(err, "marketgrid fetch")
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		return nil, &coreerrors.ExternalAPIError{
			Vendor:     vendorID,
			StatusCode: resp.StatusCode(),
			Message:    "results page unavailable",
		}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body())
	if err != nil {
		return nil, coreerrors.WrapError(err, "marketgrid parse page")
	}

	base, err := url.Parse(s.baseURL)
	if err != nil {
		return nil, coreerrors.WrapError(err, "marketgrid base url")
	}

	results := make([]domain.ScrapeResult, 0)
	doc.Find("div.result-tile").Each(func(i int, sel *goquery.Selection) {
		title := strings.TrimSpace(sel.Find(".item-title").Text())
		if title == "" {
			return
		}

		result := domain.ScrapeResult{
			Vendor: vendorID,
			Title:  title,
			Price:  parse.PriceOrZero(sel.Find(".item-price").Text()),
			Rating: parse.RatingOrZero(sel.Find(".item-rating").AttrOr("data-score", "")),
		}
		if href, ok := sel.Find("a.item-link").Attr("href"); ok {
			result.URL = absoluteURL(base, href)
		}
		if src, ok := sel.Find("img.item-image").Attr("src"); ok {
			result.Image = absoluteURL(base, src)
		}
		if blurb, err := sel.Find(".item-blurb").Html(); err == nil {
			result.Description = htmlutil.StripHTML(blurb)
		}

		results = append(results, result)
	})

	return results, nil
}

// absoluteURL resolves href against base when href is relative.
func absoluteURL(base *url.URL, href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if u.IsAbs() {
		return href
	}
	return base.ResolveReference(u).String()
}
