// ABOUTME: Utility functions for parsing prices and ratings from scraped text
// ABOUTME: Provides safe parsing with zero-value fallbacks

package parse

import (
	"strconv"
	"strings"
)

// PriceOrZero extracts a numeric price from scraped text such as
// "£51.77", "$1,299.00" or "24.99", returning 0 when no number is found.
func PriceOrZero(s string) float64 {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	start := strings.IndexFunc(cleaned, isPriceRune)
	if start < 0 {
		return 0
	}
	end := start
	for end < len(cleaned) && isPriceRune(rune(cleaned[end])) {
		end++
	}

	v, err := strconv.ParseFloat(cleaned[start:end], 64)
	if err != nil {
		return 0
	}
	return v
}

func isPriceRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '.'
}

// RatingOrZero parses a rating value, returning 0 if parsing fails.
func RatingOrZero(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
