package convoctx

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInvalidConfig is returned when the context configuration is invalid,
	// e.g. a non-positive capacity.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidSnapshot is returned when Restore is given a malformed snapshot.
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)

// ContextError represents an error with additional context
type ContextError struct {
	Op        string         // Operation that failed
	Err       error          // Underlying error
	ContextID string         // Context instance ID if applicable
	Context   map[string]any // Additional context
}

// Error implements the error interface
func (e *ContextError) Error() string {
	if e.ContextID != "" {
		return fmt.Sprintf("%s (context=%s): %v", e.Op, e.ContextID, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *ContextError) Unwrap() error {
	return e.Err
}

// WithContext adds additional context to the error
func (e *ContextError) WithContext(key string, value any) *ContextError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// NewContextError creates a new ContextError
func NewContextError(op string, err error) *ContextError {
	return &ContextError{
		Op:  op,
		Err: err,
	}
}
