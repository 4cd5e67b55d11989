package toolbox

import (
	"errors"
	"fmt"
)

// ErrInvalidInvocationContext is returned when a synchronous entry point
// (InvokeSync, LoadToolSync, LoadToolsetSync) is called from code that is
// already executing on the shared background carrier. Blocking there would
// deadlock the carrier, so the call fails fast instead.
var ErrInvalidInvocationContext = errors.New("toolbox: synchronous call from inside the invocation carrier")

// ManifestError indicates the server returned a manifest document that could
// not be parsed. It is a configuration error and is never retried.
type ManifestError struct {
	Err error
}

// Error returns a formatted error message.
func (e *ManifestError) Error() string {
	return fmt.Sprintf("toolbox: malformed manifest: %v", e.Err)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *ManifestError) Unwrap() error {
	return e.Err
}

// ServerError represents a non-2xx response from the Toolbox server.
type ServerError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int
	// Message is the error text from the response body, if any.
	Message string
}

// Error returns a formatted error message including the status code.
func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("toolbox: server returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("toolbox: server returned %d", e.StatusCode)
}

// Temporary reports whether a retry could plausibly succeed.
// Rate limiting and server-side failures are temporary; everything else,
// notably 4xx usage errors, is not.
func (e *ServerError) Temporary() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500
}
