package interpret

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/parsekit/jsondiag/position"
)

// encoding/json reports the offending byte as a quoted character literal
// at the head of the message:
//
//	invalid character '}' looking for beginning of object key string
var goInvalidCharacter = regexp2.MustCompile(
	`^invalid character ('(?:[^'\\]|\\.)+')`,
	regexp2.None)

type goInterpreter struct{}

// Go returns the interpreter for the encoding/json engine. It recognizes
// failures by type rather than wording: any error carrying a
// *json.SyntaxError is a parse failure, and its Offset field is the
// location source.
func Go() Interpreter {
	return goInterpreter{}
}

func (goInterpreter) Recognize(err error) bool {
	var syntaxErr *json.SyntaxError
	return errors.As(err, &syntaxErr)
}

func (goInterpreter) Locate(text string, err error) (position.Position, bool) {
	var syntaxErr *json.SyntaxError
	if !errors.As(err, &syntaxErr) {
		return position.Position{}, false
	}

	if strings.HasPrefix(syntaxErr.Error(), "unexpected end of JSON input") {
		return ResolveOffset(text, len(text))
	}

	// Offset counts the bytes consumed through the offending byte, so the
	// byte itself sits one position earlier.
	offset := int(syntaxErr.Offset) - 1
	if offset < 0 || offset > len(text) {
		return position.Position{}, false
	}
	return ResolveOffset(text, offset)
}

func (goInterpreter) Enhance(message string) string {
	out, err := goInvalidCharacter.ReplaceFunc(message, func(m regexp2.Match) string {
		literal := m.Groups()[1].String()
		char, uerr := strconv.Unquote(literal)
		if uerr != nil || char == "" {
			return m.String()
		}
		return fmt.Sprintf("invalid character %s (%s)", literal, codePoint(char))
	}, -1, 1)
	if err != nil {
		return message
	}
	return out
}
