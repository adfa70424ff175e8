package servarr

import (
	"errors"
	"fmt"
)

// Common errors returned by the servarr client.
var (
	// ErrInvalidConfig indicates invalid client configuration.
	ErrInvalidConfig = errors.New("invalid servarr configuration")
)

// ConnectionError indicates the instance could not be reached at the
// transport level (DNS failure, connection refused, timeout).
type ConnectionError struct {
	URL    string
	Reason string
	Err    error
}

// Error implements the error interface
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("cannot connect to %s: %s", e.URL, e.Reason)
}

// Unwrap returns the underlying transport error
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// AuthenticationError indicates the instance rejected the API key.
type AuthenticationError struct {
	URL        string
	StatusCode int
}

// Error implements the error interface
func (e *AuthenticationError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("authentication failed for %s: invalid API key (HTTP %d)", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("authentication failed for %s: check API key", e.URL)
}

// RequestError indicates a non-2xx response that is neither an
// authentication failure nor a transport failure.
type RequestError struct {
	URL        string
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *RequestError) Error() string {
	return fmt.Sprintf("API request to %s failed: status %d", e.URL, e.StatusCode)
}

// DetectionError indicates the instance answered but its application
// kind could not be determined from the status response.
type DetectionError struct {
	URL     string
	AppName string
}

// Error implements the error interface
func (e *DetectionError) Error() string {
	if e.AppName != "" {
		return fmt.Sprintf("connected to %s but %q is not a known app type; specify one of sonarr, radarr, lidarr, readarr, prowlarr with 'type'", e.URL, e.AppName)
	}
	return fmt.Sprintf("connected to %s but could not detect app type; specify sonarr, radarr, lidarr, readarr, or prowlarr with 'type'", e.URL)
}
