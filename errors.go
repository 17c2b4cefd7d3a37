// Package fdon implements Fast Data Object Notation: a tagged,
// JSON-adjacent textual format whose parser borrows scalars directly
// from the input buffer and allocates composite nodes in a caller-owned
// arena. See Minify and Parse.
package fdon

import (
	"errors"
	"fmt"
)

var (
	// ErrType is returned when an accessor is called on a Value of the
	// wrong Kind.
	ErrType = errors.New("fdon: type error")
	// ErrParse is returned (wrapped by *ParseError) for any failure
	// encountered while parsing FDON text.
	ErrParse = errors.New("fdon: parse error")
)

// ParseError reports a parse failure and the byte offset in the input
// at which it was detected, per the "(message, offset)" contract.
type ParseError struct {
	Message string
	Offset  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("fdon: %s at byte %d", e.Message, e.Offset)
}

// Unwrap lets callers use errors.Is(err, fdon.ErrParse).
func (e *ParseError) Unwrap() error {
	return ErrParse
}

func parseErrorf(offset int, format string, args ...any) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...), Offset: offset}
}
