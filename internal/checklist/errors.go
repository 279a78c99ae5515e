package checklist

import (
	"errors"
	"fmt"
)

// ErrLastSection is returned when deleting a section would leave the
// document with none. A document always keeps at least one section.
var ErrLastSection = errors.New("cannot delete the last remaining section")

// ParseErrorKind classifies why a document failed to parse.
type ParseErrorKind int

const (
	// MalformedJSON means the input was not valid JSON at all.
	MalformedJSON ParseErrorKind = iota
	// SchemaMismatch means the input was JSON but not a checklist
	// document (no sections array).
	SchemaMismatch
)

// ParseError is returned by ParseDocument for input that cannot be
// restored. Field-level problems never produce a ParseError; they are
// normalized away instead.
type ParseError struct {
	Kind ParseErrorKind
	Err  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch e.Kind {
	case MalformedJSON:
		return fmt.Sprintf("malformed JSON: %v", e.Err)
	case SchemaMismatch:
		return fmt.Sprintf("not a checklist document: %v", e.Err)
	default:
		return e.Err.Error()
	}
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsMalformedJSON returns true if the input failed JSON parsing.
func (e *ParseError) IsMalformedJSON() bool {
	return e.Kind == MalformedJSON
}

// IsSchemaMismatch returns true if the input was JSON of the wrong shape.
func (e *ParseError) IsSchemaMismatch() bool {
	return e.Kind == SchemaMismatch
}

// AsParseError checks if an error is a ParseError and returns it.
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
