package catalog

import (
	"errors"
	"fmt"
)

// ErrMalformedRecord is matched by every *ParseError.
var ErrMalformedRecord = errors.New("malformed track record")

// ParseError describes a track record that could not be turned into a track.
type ParseError struct {
	// Line is the 1-indexed source line.
	Line int

	// Text is the trimmed source line.
	Text string

	// Reason says what is wrong with the record.
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// Unwrap lets errors.Is match ErrMalformedRecord.
func (e *ParseError) Unwrap() error {
	return ErrMalformedRecord
}
