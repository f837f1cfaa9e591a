package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// InternalError carries a base error plus presentation metadata. The hint is
// a human-readable message safe to surface to the UI; reportable details are
// structured fields included in the JSON error response.
type InternalError struct {
	err     error
	mark    error
	hint    string
	details map[string]interface{}
}

func (e *InternalError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e *InternalError) Unwrap() error {
	return e.err
}

// Is lets errors.Is match against both the wrapped error and the mark.
func (e *InternalError) Is(target error) bool {
	if e.mark != nil && errors.Is(e.mark, target) {
		return true
	}
	return errors.Is(e.err, target)
}

// Hint returns the user-facing message, falling back to the error text.
func (e *InternalError) Hint() string {
	if e.hint != "" {
		return e.hint
	}
	return e.Error()
}

// Details returns the reportable details map, which may be nil.
func (e *InternalError) Details() map[string]interface{} {
	return e.details
}

// NewError starts a new error chain from a message.
func NewError(message string) *InternalError {
	return &InternalError{err: errors.New(message)}
}

// NewErrorf starts a new error chain from a formatted message.
func NewErrorf(format string, args ...interface{}) *InternalError {
	return &InternalError{err: errors.Newf(format, args...)}
}

// WithError wraps an existing error so metadata can be attached to it.
func WithError(err error) *InternalError {
	if err == nil {
		return nil
	}
	if ie, ok := err.(*InternalError); ok {
		return ie
	}
	return &InternalError{err: err}
}

// WithHint attaches a user-facing message.
func (e *InternalError) WithHint(hint string) *InternalError {
	e.hint = hint
	return e
}

// WithHintf attaches a formatted user-facing message.
func (e *InternalError) WithHintf(format string, args ...interface{}) *InternalError {
	e.hint = fmt.Sprintf(format, args...)
	return e
}

// WithReportableDetails attaches structured fields for the error response.
func (e *InternalError) WithReportableDetails(details map[string]interface{}) *InternalError {
	e.details = details
	return e
}

// Mark classifies the error with one of the sentinel errors and terminates
// the builder chain.
func (e *InternalError) Mark(mark error) error {
	e.mark = mark
	return e
}
