// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"github.com/danielgtaylor/huma/v2"

	"pricescout-api/core/errors"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors.
// Vendor failures never reach this path - the orchestrator records them
// as data; anything arriving here is a request-level failure.
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if errors.IsExternalAPI(err) {
		return huma.Error503ServiceUnavailable("upstream service error", err)
	}

	return huma.Error500InternalServerError("internal server error", err)
}
