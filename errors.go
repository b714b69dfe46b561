package aigate

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned when the Gemini API key is missing from the
// configuration or rejected by the service. The message is stable and
// intended for operator-facing display as-is.
var ErrNotConfigured = errors.New("Gemini API key is not configured. Set the GEMINI_API_KEY environment variable for this deployment")

// GenericError wraps a remote or internal failure with the label of the
// operation that produced it.
type GenericError struct {
	Op      string // operation label, e.g. "generate image"
	Message string // underlying failure message
	Cause   error  // underlying error, if any
}

// Error returns the operation label followed by the underlying message.
func (e *GenericError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *GenericError) Unwrap() error {
	return e.Cause
}

// UnknownError reports a failure that carried no message at all.
type UnknownError struct {
	Op string // operation label
}

// Error returns the operation label with an unknown-failure marker.
func (e *UnknownError) Error() string {
	return fmt.Sprintf("%s: unknown failure", e.Op)
}

// IsNotConfigured returns true if the error is, or wraps, ErrNotConfigured.
func IsNotConfigured(err error) bool {
	return errors.Is(err, ErrNotConfigured)
}
