// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts controller and catalog errors to appropriate HTTP responses

package handlers

import (
	"errors"

	apperrors "bingefeed-api/core/errors"
	"bingefeed-api/core/feed"
	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, feed.ErrBusy) {
		return huma.Error409Conflict("A load is already in progress for this feed")
	}

	if apperrors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if apperrors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if apperrors.IsCatalog(err) {
		switch apperrors.KindOf(err) {
		case apperrors.KindRateLimited:
			return huma.Error429TooManyRequests("Rate limited by the catalog", err)
		case apperrors.KindServerFailure, apperrors.KindTransportFailure:
			return huma.Error503ServiceUnavailable("Catalog unavailable", err)
		case apperrors.KindInvalidRequest, apperrors.KindDecodeFailure:
			return huma.Error502BadGateway("Catalog request failed", err)
		}
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
