// Package interpret translates the failure surface of a concrete JSON
// parser engine into locations and enriched messages.
//
// Every engine words its errors differently, so each supported engine gets
// its own Interpreter. Adding support for another engine means adding an
// interpreter here, not touching the diagnostic pipeline.
package interpret

import (
	"github.com/parsekit/jsondiag/position"
)

// Interpreter understands one parser engine's failures.
type Interpreter interface {
	// Recognize reports whether err is a parse failure produced by this
	// interpreter's engine. Unrecognized failures must be propagated to
	// the caller untouched.
	Recognize(err error) bool

	// Locate determines where in text the failure occurred. ok is false
	// when the error carries no usable location; callers degrade to a
	// diagnostic without a code frame.
	Locate(text string, err error) (pos position.Position, ok bool)

	// Enhance rewrites the raw engine message with extra detail, such as
	// the Unicode code point of an unexpected character. Messages that do
	// not match the engine's known shapes pass through unchanged.
	Enhance(message string) string
}

// ResolveOffset maps a reported byte offset to a position, applying the
// end-of-input rule shared by all interpreters: an offset equal to the
// text length indexes no character, so the position one past the last
// character is reported instead.
func ResolveOffset(text string, offset int) (position.Position, bool) {
	if offset == len(text) {
		if len(text) == 0 {
			return position.Position{}, false
		}
		pos, err := position.FromOffset(text, len(text)-1)
		if err != nil {
			return position.Position{}, false
		}
		pos.Column++
		return pos, true
	}
	pos, err := position.FromOffset(text, offset)
	if err != nil {
		return position.Position{}, false
	}
	return pos, true
}
