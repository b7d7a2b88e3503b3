package stl

import (
	"errors"
	"fmt"
)

// ErrMalformedFile indicates a binary STL file whose layout does not add
// up: shorter than the 84-byte minimum, or a declared triangle count that
// is inconsistent with the remaining bytes. Wrap with detail via %w.
var ErrMalformedFile = errors.New("malformed STL file")

// SyntaxError is an ASCII grammar violation. The first one encountered
// aborts the parse; downstream lines are not checked.
type SyntaxError struct {
	// Line is the 1-based line number in the input file.
	Line     int
	Expected string
	Actual   string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: expected '%s' but got '%s'", e.Line, e.Expected, e.Actual)
}

// NameMismatchError indicates that the name on the endsolid line does not
// repeat the name declared on the solid line.
type NameMismatchError struct {
	Line     int
	Declared string
	Found    string
}

func (e *NameMismatchError) Error() string {
	return fmt.Sprintf("line %d: expected 'endsolid %s' but got '%s'", e.Line, e.Declared, e.Found)
}

// ParseFailure wraps the first structural error together with the number
// of warnings observed before parsing stopped, so callers can report both
// without any cross-call state.
type ParseFailure struct {
	Err      error
	Warnings int
}

func (e *ParseFailure) Error() string { return e.Err.Error() }

func (e *ParseFailure) Unwrap() error { return e.Err }
