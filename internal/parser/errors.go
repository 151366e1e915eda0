package parser

import (
	"errors"
	"fmt"
	"strings"
)

// ParseError reports that no grammar alternative matched at an offset.
//
// All alternatives in this grammar are mutually exclusive prefixes, so a
// single generic failure with the offending position is sufficient; there
// is no best-error selection. Rejection of a structurally valid but
// unsupported GraphQL fragment reports through the same type - callers
// cannot distinguish "malformed query" from "unsupported query shape".
type ParseError struct {
	// Offset is the byte offset into the source where parsing failed.
	Offset int

	// Msg is a human-readable description.
	Msg string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Offset, e.Msg)
}

// IsParseError returns true if err is (or wraps) a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

func errAt(pos int, msg string) *ParseError {
	return &ParseError{Offset: pos, Msg: msg}
}

// LineCol converts a byte offset into a 1-based line and column for
// diagnostics. Offsets past the end of src report the position just after
// the last byte.
func LineCol(src string, offset int) (line, col int) {
	if offset > len(src) {
		offset = len(src)
	}
	line = 1 + strings.Count(src[:offset], "\n")
	col = offset - strings.LastIndexByte(src[:offset], '\n')
	return line, col
}
