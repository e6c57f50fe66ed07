// ABOUTME: Main entry point for the PriceScout API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pricescout-api/api"
	"pricescout-api/api/handlers"
	"pricescout-api/core/interfaces"
	"pricescout-api/core/registry"
	"pricescout-api/core/search"
	"pricescout-api/infrastructure/cache/memory"
	"pricescout-api/infrastructure/cache/redis"
	stdhttp "pricescout-api/infrastructure/http/standard"
	logruslogger "pricescout-api/infrastructure/logger/logrus"
	"pricescout-api/pkg/config"
	"pricescout-api/vendors/bookbarn"
	"pricescout-api/vendors/marketgrid"
	"pricescout-api/vendors/shopstream"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logruslogger.NewLogrusLogger(cfg.Log.Level)
	logger.Info("Starting PriceScout API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"cache_ttl":  cfg.Search.CacheTTL,
	})

	// Create cache
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache(
				time.Duration(cfg.Search.CacheTTL)*time.Second,
				time.Duration(cfg.Cache.Memory.CleanupInterval)*time.Second,
			)
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache(
			time.Duration(cfg.Search.CacheTTL)*time.Second,
			time.Duration(cfg.Cache.Memory.CleanupInterval)*time.Second,
		)
		logger.Info("Using memory cache", nil)
	}

	// Create HTTP client
	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create vendor scrapers
	shopstreamScraper := shopstream.New(httpClient, cfg.Vendors.ShopStreamURL)
	marketgridScraper := marketgrid.New(httpClient, cfg.Vendors.MarketGridURL)
	bookbarnScraper, err := bookbarn.New(cfg.Vendors.BookBarnURL)
	if err != nil {
		log.Fatalf("Failed to create bookbarn scraper: %v", err)
	}

	scraperRegistry := registry.New(shopstreamScraper, bookbarnScraper, marketgridScraper)
	logger.Info("Registered vendor scrapers", map[string]interface{}{
		"vendors": scraperRegistry.Vendors(),
	})

	// Create the search orchestrator
	metrics := search.NewMetrics()
	searchService := search.NewService(deps, scraperRegistry, search.Config{
		CacheTTL: time.Duration(cfg.Search.CacheTTL) * time.Second,
	}).WithMetrics(metrics)

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:    logger,
		RateLimit: float64(cfg.Server.RateLimit),
		RateBurst: cfg.Server.RateBurst,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	requestTimeout := time.Duration(cfg.Search.RequestTimeout) * time.Second
	searchHandler := handlers.NewSearchHandler(searchService, requestTimeout, logger)
	searchHandler.RegisterRoutes(humaAPI)

	// Expose orchestrator metrics
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: requestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
