package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	// ErrAPIKeyMissing is raised before any network call when no credential
	// is configured. The message is the fixed user-facing string clients
	// match on to show the key gate.
	ErrAPIKeyMissing = errors.New("api key is not configured")

	// ErrModelOutput marks responses the model returned in a shape we could
	// not decode or that violate the invariants the prompt asked for.
	ErrModelOutput = errors.New("malformed model output")

	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
)

// authErrorMarkers are matched case-insensitively against error text to
// decide whether a failure is credential-shaped. Upstream providers report
// bad keys inconsistently (404 for unknown keys on the native path, 401 on
// the OpenAI-compatible path), hence the substring matching.
var authErrorMarkers = []string{
	ErrAPIKeyMissing.Error(),
	"invalid key",
	"invalid api key",
	"api_key_invalid",
	"api key not valid",
	"unauthorized",
	"not found",
	"401",
}

// IsAuthError reports whether err looks like a missing or invalid
// credential rather than a generic upstream failure.
func IsAuthError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrAPIKeyMissing) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, m := range authErrorMarkers {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
