// ABOUTME: Prometheus collectors for the search orchestrator
// ABOUTME: Tracks vendor invocations, latency, failures, and cache effectiveness

package search

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles Prometheus collectors for the orchestrator.
type Metrics struct {
	Registry            *prometheus.Registry
	SearchesTotal       *prometheus.CounterVec
	VendorRequestsTotal *prometheus.CounterVec
	VendorDuration      *prometheus.HistogramVec
	ResultsMerged       prometheus.Histogram
}

// NewMetrics constructs and registers all metrics on a dedicated registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	searches := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_requests_total",
			Help: "Total search requests by cache outcome.",
		},
		[]string{"cache"},
	)
	vendorRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_vendor_requests_total",
			Help: "Total vendor scrape invocations by vendor and outcome.",
		},
		[]string{"vendor", "outcome"},
	)
	vendorDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "search_vendor_duration_seconds",
			Help:    "Vendor scrape latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"vendor"},
	)
	resultsMerged := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "search_results_merged",
			Help:    "Number of results in the merged list per request.",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
		},
	)

	registry.MustRegister(searches, vendorRequests, vendorDuration, resultsMerged)

	return &Metrics{
		Registry:            registry,
		SearchesTotal:       searches,
		VendorRequestsTotal: vendorRequests,
		VendorDuration:      vendorDuration,
		ResultsMerged:       resultsMerged,
	}
}

// IncSearch increments the search counter for a cache hit or miss.
func (m *Metrics) IncSearch(cacheOutcome string) {
	if m == nil {
		return
	}
	m.SearchesTotal.WithLabelValues(cacheOutcome).Inc()
}

// ObserveVendor records one vendor invocation.
func (m *Metrics) ObserveVendor(vendor, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.VendorRequestsTotal.WithLabelValues(vendor, outcome).Inc()
	m.VendorDuration.WithLabelValues(vendor).Observe(d.Seconds())
}

// ObserveMerged records the merged result count for one request.
func (m *Metrics) ObserveMerged(count int) {
	if m == nil {
		return
	}
	m.ResultsMerged.Observe(float64(count))
}
