package sdk

import (
	"errors"
	"fmt"
)

// Sentinel errors for common SDK error conditions, usable with errors.Is().
var (
	// ErrPayloadEncoding indicates a login payload document could not be
	// encoded to its wire form.
	ErrPayloadEncoding = errors.New("payload encoding failed")
)

// Error kinds categorize errors by their type.
const (
	// KindValidation represents errors related to input validation.
	KindValidation = "validation"

	// KindEncoding represents errors encoding a payload for the wire.
	KindEncoding = "encoding"

	// KindInternal represents internal SDK errors.
	KindInternal = "internal"
)

// SDKError wraps an underlying error with the operation that failed and the
// category of failure. It implements the error interface and supports
// unwrapping, so it composes with errors.Is() and errors.As().
type SDKError struct {
	// Op is the operation that failed (e.g., "credentials.Function").
	Op string

	// Kind categorizes the error (e.g., KindEncoding).
	Kind string

	// Err is the underlying error that caused this error.
	Err error

	// Context carries optional debugging detail such as provider names or
	// payload sizes.
	Context map[string]any
}

// Error returns a formatted message including the operation, kind, and
// underlying error.
func (e *SDKError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("sdk: %s: %s", e.Op, e.Kind)
	}
	if len(e.Context) > 0 {
		return fmt.Sprintf("sdk: %s (%s): %v [context: %+v]", e.Op, e.Kind, e.Err, e.Context)
	}
	return fmt.Sprintf("sdk: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *SDKError) Unwrap() error {
	return e.Err
}

// Is matches another SDKError by Kind (and Op when the target sets one), or
// delegates to the underlying error.
func (e *SDKError) Is(target error) bool {
	if target == nil {
		return false
	}
	if t, ok := target.(*SDKError); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}
	return errors.Is(e.Err, target)
}

// WithContext returns a copy of the error with the given context merged in.
func (e *SDKError) WithContext(ctx map[string]any) *SDKError {
	cp := *e
	merged := make(map[string]any, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}
	cp.Context = merged
	return &cp
}

// NewValidationError creates a new SDKError with KindValidation.
func NewValidationError(op string, err error) *SDKError {
	return &SDKError{Op: op, Kind: KindValidation, Err: err}
}

// NewEncodingError creates a new SDKError with KindEncoding.
func NewEncodingError(op string, err error) *SDKError {
	return &SDKError{Op: op, Kind: KindEncoding, Err: err}
}

// NewInternalError creates a new SDKError with KindInternal.
func NewInternalError(op string, err error) *SDKError {
	return &SDKError{Op: op, Kind: KindInternal, Err: err}
}
