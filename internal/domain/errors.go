package domain

import (
	"errors"
	"net/http"
)

// ValidationError rejects a request before any outbound call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// ExtractionError reports a failure to fetch or parse a page.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	if e.Err == nil {
		return "failed to extract content from URL"
	}

	return "failed to extract content from URL: " + e.Err.Error()
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// GenerationError reports a failure of the upstream completion call.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	if e.Err == nil {
		return "failed to generate summary"
	}

	return "failed to generate summary: " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// StatusCode maps an error from the summarize pipeline to its HTTP status.
// Anything outside the known taxonomy is an internal error.
func StatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}

	var extractionErr *ExtractionError
	if errors.As(err, &extractionErr) {
		return http.StatusBadRequest
	}

	var generationErr *GenerationError
	if errors.As(err, &generationErr) {
		return http.StatusInternalServerError
	}

	return http.StatusInternalServerError
}
