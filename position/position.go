// Package position converts flat byte offsets in source text into
// human-readable line/column locations.
package position

import (
	"fmt"
	"unicode/utf8"
)

// Position represents a location in source text.
// Line and Column are 1-based; Column counts Unicode code points,
// not bytes, so a multi-byte character advances the column by one.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// String formats the position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// OutOfRangeError reports an offset outside the bounds of the source text.
type OutOfRangeError struct {
	Offset int
	Length int
}

// Error implements the error interface.
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("offset %d out of range for text of length %d", e.Offset, e.Length)
}

// FromOffset resolves a 0-based byte offset into text to a Position.
//
// Valid offsets are 0 through len(text) inclusive; len(text) denotes the
// location just past the last character (when the text ends in a line
// terminator, that is the start of a new empty line). Line terminators are
// "\r\n", "\n" and lone "\r".
func FromOffset(text string, offset int) (Position, error) {
	if offset < 0 || offset > len(text) {
		return Position{}, &OutOfRangeError{Offset: offset, Length: len(text)}
	}

	line := 1
	lineStart := 0
	for i := 0; i < offset; {
		switch text[i] {
		case '\n':
			i++
			line++
			lineStart = i
		case '\r':
			next := i + 1
			if next < len(text) && text[next] == '\n' {
				next++
			}
			if next > offset {
				// Offset falls inside the terminator sequence; it still
				// belongs to the line the terminator ends.
				i = offset
				break
			}
			i = next
			line++
			lineStart = i
		default:
			i++
		}
	}

	return Position{
		Line:   line,
		Column: utf8.RuneCountInString(text[lineStart:offset]) + 1,
	}, nil
}
