// Package server provides the HTTP REST API for the resume tailor.
package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-tailor/internal/extract"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/scrape"
	"github.com/jonathan/resume-tailor/internal/session"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
// Client input problems map to 4xx; processing failures to 5xx.
func HTTPStatus(err error) int {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return http.StatusBadRequest
	}

	var unsupported *extract.UnsupportedFormatError
	if errors.As(err, &unsupported) {
		return http.StatusBadRequest
	}
	var parseErr *extract.ParseError
	if errors.As(err, &parseErr) {
		return http.StatusUnprocessableEntity
	}

	var invalidURL *scrape.InvalidURLError
	if errors.As(err, &invalidURL) {
		return http.StatusBadRequest
	}

	var notFound *session.NotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound
	}
	var busy *session.BusyError
	if errors.As(err, &busy) {
		return http.StatusConflict
	}

	var timeout *llm.TimeoutError
	if errors.As(err, &timeout) {
		return http.StatusGatewayTimeout
	}

	// FetchError, ModelError, MalformedResponseError, RenderError and
	// anything unrecognized are processing failures.
	return http.StatusInternalServerError
}
