package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrValidation  = errors.New("validation error")
	ErrUnavailable = errors.New("unavailable")

	// ErrClipboard marks a failure to read or write the clipboard. It is
	// fatal to the watch loop.
	ErrClipboard = errors.New("clipboard error")
)

// Clipboard operation names used in ClipboardError.
const (
	OpRead  = "read"
	OpWrite = "write"
	OpInit  = "init"
)

// ClipboardError records which clipboard operation failed and why.
// errors.Is(err, ErrClipboard) holds for every ClipboardError; the cause is
// also reachable, so errors.Is(err, ErrUnavailable) works for breaker
// rejections.
type ClipboardError struct {
	Op  string
	Err error
}

// NewClipboardError wraps err as a failed clipboard operation.
func NewClipboardError(op string, err error) *ClipboardError {
	return &ClipboardError{Op: op, Err: err}
}

func (e *ClipboardError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", ErrClipboard.Error(), e.Op)
	}
	return fmt.Sprintf("%s: %s: %v", ErrClipboard.Error(), e.Op, e.Err)
}

func (e *ClipboardError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrClipboard}
	}
	return []error{ErrClipboard, e.Err}
}

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		names = append(names, field)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, field := range names {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
