package collector

import "fmt"

// SendError indicates the webhook POST failed.
type SendError struct {
	Webhook    string
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *SendError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("webhook POST failed: status %d", e.StatusCode)
	}
	return fmt.Sprintf("webhook POST failed: %v", e.Err)
}

// Unwrap returns the underlying transport error, if any
func (e *SendError) Unwrap() error {
	return e.Err
}
