package boardclient

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrClientNotReady is an exported constant or variable used by the API client.
	ErrClientNotReady = errors.New("client not initialized")
	// ErrUnauthorized is an exported constant or variable used by the API client.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidBaseURL is an exported constant or variable used by the API client.
	ErrInvalidBaseURL = errors.New("invalid base URL")
	// ErrNoCredential is an exported constant or variable used by the API client.
	ErrNoCredential = errors.New("no credential set")
	// ErrDecodeResponse is an exported constant or variable used by the API client.
	ErrDecodeResponse = errors.New("response decode failed")
)

// APIError is a non-2xx backend response. Status carries the HTTP status
// code; Detail carries the backend's "detail" message when it sent one.
//
// Network/transport failures are never wrapped in APIError; they surface as
// *url.Error from the underlying http.Client, untouched.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Detail)
}

// Is reports ErrUnauthorized equivalence for 401 responses so callers can
// use errors.Is without digging out the status code.
func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}

// IsUnauthorized reports whether err is a 401 backend response.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusUnauthorized
	}
	return errors.Is(err, ErrUnauthorized)
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not an
// *APIError (network failures, decode failures).
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
