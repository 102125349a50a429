package store

import "fmt"

// NotFoundError indicates a persisted document does not exist. Callers treat
// it as "no saved state", not a failure.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("document %s not found", e.Path)
}

// ParseError indicates a persisted document exists but could not be decoded.
// It wraps the underlying decode failure.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
