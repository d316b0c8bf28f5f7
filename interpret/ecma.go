package interpret

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"

	"github.com/parsekit/jsondiag/position"
)

// ECMAScript-style engines report either a flat offset or a full
// line/column, always at the end of the message:
//
//	Unexpected token } in JSON at position 8
//	Expected ',' or '}' after property value in JSON at position 8 (line 1 column 9)
var ecmaLocation = regexp2.MustCompile(
	`in JSON at position (?<index>\d+)(?: \(line (?<line>\d+) column (?<column>\d+)\))?$`,
	regexp2.None)

// The offending token is a single character, quoted on some engine
// versions and bare on others.
var ecmaToken = regexp2.MustCompile(
	`(?<=^Unexpected token )(?:'(?<quoted>.)'|(?<bare>.))`,
	regexp2.None)

type ecmaInterpreter struct{}

// ECMA returns the interpreter for engines that word their failures in the
// ECMAScript JSON.parse style. Recognition is purely textual: this is the
// interpreter to use when the engine surfaces nothing but a message
// string.
func ECMA() Interpreter {
	return ecmaInterpreter{}
}

func (ecmaInterpreter) Recognize(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if strings.HasPrefix(msg, "Unexpected ") {
		return true
	}
	m, merr := ecmaLocation.FindStringMatch(msg)
	return merr == nil && m != nil
}

func (ecmaInterpreter) Locate(text string, err error) (position.Position, bool) {
	if err == nil {
		return position.Position{}, false
	}
	m, merr := ecmaLocation.FindStringMatch(err.Error())
	if merr != nil || m == nil {
		return position.Position{}, false
	}

	// An embedded line/column pair is the engine's own accounting; trust
	// it over recomputing from the offset.
	lineGroup := m.GroupByName("line")
	columnGroup := m.GroupByName("column")
	if len(lineGroup.Captures) > 0 && len(columnGroup.Captures) > 0 {
		line, lerr := strconv.Atoi(lineGroup.String())
		column, cerr := strconv.Atoi(columnGroup.String())
		if lerr != nil || cerr != nil || line < 1 || column < 1 {
			return position.Position{}, false
		}
		return position.Position{Line: line, Column: column}, true
	}

	offset, aerr := strconv.Atoi(m.GroupByName("index").String())
	if aerr != nil {
		return position.Position{}, false
	}
	return ResolveOffset(text, offset)
}

func (ecmaInterpreter) Enhance(message string) string {
	out, err := ecmaToken.ReplaceFunc(message, func(m regexp2.Match) string {
		token := m.GroupByName("quoted").String()
		if token == "" {
			token = m.GroupByName("bare").String()
		}
		return fmt.Sprintf("%q (%s)", token, codePoint(token))
	}, -1, 1)
	if err != nil {
		return message
	}
	return out
}

// codePoint renders the first code point of s as an escaped Unicode
// literal, e.g. `\u{7d}` for "}".
func codePoint(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	return fmt.Sprintf(`\u{%x}`, r)
}
