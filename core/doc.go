// Package core contains the business logic for the PriceScout API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (ScrapeResult, SearchOutcome, etc.)
// - registry: Vendor scraper registration and selection resolution
// - search: Concurrent search orchestration with result caching
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "pricescout-api/core/interfaces"
//	    "pricescout-api/core/registry"
//	    "pricescout-api/core/search"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Register vendor scrapers and create the service
//	reg := registry.New(shopstreamScraper, bookbarnScraper)
//	svc := search.NewService(deps, reg, search.Config{CacheTTL: 5 * time.Minute})
//
//	// Run a search across all registered vendors
//	outcome, err := svc.Search(ctx, "mechanical keyboard", nil)
//
package core
