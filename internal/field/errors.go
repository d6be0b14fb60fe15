package field

import (
	"errors"
	"fmt"
)

// Failure classes returned by the reader. Use errors.Is to classify.
var (
	// ErrInvalidKind indicates a value kind other than scalar or vector.
	ErrInvalidKind = errors.New("field: kind must be scalar or vector")

	// ErrInvalidArgument indicates a bad caller-supplied argument such as a
	// non-positive grid size.
	ErrInvalidArgument = errors.New("field: invalid argument")

	// ErrDecode indicates text that does not follow the field grammar.
	ErrDecode = errors.New("field: malformed field data")

	// ErrSizeMismatch indicates a binary dump whose length is not a whole
	// number of frames.
	ErrSizeMismatch = errors.New("field: size is not a multiple of the frame size")
)

// DecodeError locates a grammar violation inside a text dump.
// Positions are zero-based; Row and Col are -1 when they do not apply.
type DecodeError struct {
	Frame int
	Row   int
	Col   int
	Cell  string
	Err   error
}

func (e *DecodeError) Error() string {
	pos := fmt.Sprintf("frame %d", e.Frame)
	if e.Row >= 0 {
		pos += fmt.Sprintf(" row %d", e.Row)
	}
	if e.Col >= 0 {
		pos += fmt.Sprintf(" col %d", e.Col)
	}
	if e.Cell != "" {
		pos += fmt.Sprintf(" (%q)", e.Cell)
	}
	return fmt.Sprintf("%s at %s: %v", ErrDecode, pos, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is reports every DecodeError as ErrDecode.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

func decodeErr(frame, row, col int, cell string, format string, args ...any) error {
	return &DecodeError{Frame: frame, Row: row, Col: col, Cell: cell, Err: fmt.Errorf(format, args...)}
}
