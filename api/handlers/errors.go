// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"github.com/danielgtaylor/huma/v2"

	"tabclip-api/core/errors"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsTemplateSyntax(err) || errors.IsUnknownFunction(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if errors.IsExtraction(err) {
		return huma.Error502BadGateway(err.Error())
	}

	return huma.Error500InternalServerError(err.Error())
}
