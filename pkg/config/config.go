// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, search, and vendor settings

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache backend configuration
	Cache CacheConfig

	// Search contains orchestrator configuration
	Search SearchConfig

	// Vendors contains per-vendor endpoint configuration
	Vendors VendorsConfig

	// Log contains logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the sustained requests-per-second allowed per client IP
	RateLimit int

	// RateBurst is the burst size allowed per client IP
	RateBurst int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// CleanupInterval is how often expired entries are purged, in seconds
	CleanupInterval int
}

// SearchConfig holds orchestrator configuration
type SearchConfig struct {
	// CacheTTL is how long merged results stay cached, in seconds
	CacheTTL int

	// RequestTimeout is the wall-clock budget for one search request,
	// in seconds; vendors still running at the deadline are abandoned
	RequestTimeout int
}

// VendorsConfig holds the upstream endpoint for each vendor scraper
type VendorsConfig struct {
	// ShopStreamURL is the base URL of the shopstream search API
	ShopStreamURL string

	// BookBarnURL is the base URL of the bookbarn catalog site
	BookBarnURL string

	// MarketGridURL is the base URL of the marketgrid results site
	MarketGridURL string
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is the minimum log level (debug/info/warn/error)
	Level string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:      getEnvOrDefault("PORT", "8000"),
			RateLimit: getEnvAsIntOrDefault("RATE_LIMIT", 10),
			RateBurst: getEnvAsIntOrDefault("RATE_BURST", 20),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				CleanupInterval: getEnvAsIntOrDefault("MEMORY_CACHE_CLEANUP", 600),
			},
		},
		Search: SearchConfig{
			CacheTTL:       getEnvAsIntOrDefault("SEARCH_CACHE_TTL", 300),
			RequestTimeout: getEnvAsIntOrDefault("SEARCH_REQUEST_TIMEOUT", 25),
		},
		Vendors: VendorsConfig{
			ShopStreamURL: getEnvOrDefault("SHOPSTREAM_URL", "https://api.shopstream.example.com"),
			BookBarnURL:   getEnvOrDefault("BOOKBARN_URL", "https://www.bookbarn.example.com"),
			MarketGridURL: getEnvOrDefault("MARKETGRID_URL", "https://www.marketgrid.example.com"),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Search.CacheTTL < 1 {
		return errors.New("search cache TTL must be at least 1 second")
	}

	if c.Search.RequestTimeout < 1 {
		return errors.New("search request timeout must be at least 1 second")
	}

	return nil
}
