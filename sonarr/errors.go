package sonarr

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors returned by the Sonarr client.
var (
	// ErrSeriesNotFound is returned when a series cannot be found, either
	// in the remote library or through a lookup.
	ErrSeriesNotFound = errors.New("series not found")

	// ErrNoEditArguments is returned when an edit is requested with no
	// fields to change.
	ErrNoEditArguments = errors.New("expected at least one edit option to be set")

	// ErrNoConnection indicates connection failure
	ErrNoConnection = errors.New("failed to connect to sonarr")
)

// APIError represents a Sonarr API error response
type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("sonarr API error: status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// InvalidOptionError is returned when a caller-supplied option value is
// not among the legal options for a setting. The legal options are kept
// on the error so callers can surface them.
type InvalidOptionError struct {
	Setting string
	Value   string
	Options []string
}

// Error implements the error interface
func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid %s: %q (options: %s)", e.Setting, e.Value, strings.Join(e.Options, ", "))
}
