package interpret

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/parsekit/jsondiag/position"
)

func TestECMALocate(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		message string
		want    position.Position
		wantOK  bool
	}{
		{
			name:    "flat offset",
			text:    `{"a": 1,}`,
			message: "Unexpected token } in JSON at position 8",
			want:    position.Position{Line: 1, Column: 9},
			wantOK:  true,
		},
		{
			name:    "embedded line and column win over the offset",
			text:    `{"a": 1,}`,
			message: "Expected double-quoted property name in JSON at position 0 (line 7 column 12)",
			want:    position.Position{Line: 7, Column: 12},
			wantOK:  true,
		},
		{
			name:    "offset on a later line",
			text:    "{\n  \"a\": tru\n}",
			message: "Unexpected token t in JSON at position 9",
			want:    position.Position{Line: 2, Column: 8},
			wantOK:  true,
		},
		{
			name:    "offset equal to the text length reports one past the end",
			text:    `{"a": 1`,
			message: "Unexpected end of JSON input in JSON at position 7",
			want:    position.Position{Line: 1, Column: 8},
			wantOK:  true,
		},
		{
			name:    "offset beyond the text",
			text:    "{}",
			message: "Unexpected token x in JSON at position 99",
			wantOK:  false,
		},
		{
			name:    "no recognized location",
			text:    "{}",
			message: "Unexpected end of JSON input",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ECMA().Locate(tt.text, errors.New(tt.message))
			if ok != tt.wantOK {
				t.Fatalf("Locate ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Locate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestECMARecognize(t *testing.T) {
	ecma := ECMA()
	if !ecma.Recognize(errors.New("Unexpected token } in JSON at position 8")) {
		t.Error("token message not recognized")
	}
	if !ecma.Recognize(errors.New("Bad control character in string literal in JSON at position 4")) {
		t.Error("positioned message not recognized")
	}
	if ecma.Recognize(errors.New("connection reset by peer")) {
		t.Error("foreign message recognized")
	}
	if ecma.Recognize(nil) {
		t.Error("nil error recognized")
	}
}

func TestECMAEnhance(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "bare token",
			message: "Unexpected token } in JSON at position 8",
			want:    `Unexpected token "}" (\u{7d}) in JSON at position 8`,
		},
		{
			name:    "quoted token",
			message: "Unexpected token '}', \"{}\" is not valid JSON",
			want:    `Unexpected token "}" (\u{7d}), "{}" is not valid JSON`,
		},
		{
			name:    "multi-byte token",
			message: "Unexpected token ü in JSON at position 2",
			want:    `Unexpected token "ü" (\u{fc}) in JSON at position 2`,
		},
		{
			name:    "no token shape passes through",
			message: "Unexpected end of JSON input",
			want:    "Unexpected end of JSON input",
		},
		{
			name:    "unrelated message passes through",
			message: "something else entirely",
			want:    "something else entirely",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ECMA().Enhance(tt.message); got != tt.want {
				t.Errorf("Enhance(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestGoInterpreter(t *testing.T) {
	interp := Go()

	text := `{"a": 1,}`
	var v any
	err := json.Unmarshal([]byte(text), &v)
	if err == nil {
		t.Fatal("expected a syntax error")
	}
	if !interp.Recognize(err) {
		t.Fatal("syntax error not recognized")
	}
	pos, ok := interp.Locate(text, err)
	if !ok {
		t.Fatal("no location for syntax error")
	}
	if want := (position.Position{Line: 1, Column: 9}); pos != want {
		t.Errorf("Locate = %v, want %v", pos, want)
	}

	if interp.Recognize(errors.New("boom")) {
		t.Error("foreign error recognized")
	}
}

func TestGoLocateEndOfInput(t *testing.T) {
	text := `{"a": 1`
	var v any
	err := json.Unmarshal([]byte(text), &v)
	if err == nil {
		t.Fatal("expected a syntax error")
	}
	pos, ok := Go().Locate(text, err)
	if !ok {
		t.Fatal("no location for truncated input")
	}
	if want := (position.Position{Line: 1, Column: 8}); pos != want {
		t.Errorf("Locate = %v, want %v", pos, want)
	}
}

func TestGoEnhance(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "invalid character",
			message: "invalid character '}' looking for beginning of object key string",
			want:    `invalid character '}' (\u{7d}) looking for beginning of object key string`,
		},
		{
			name:    "escaped character",
			message: "invalid character '\\n' in literal true (expecting 'e')",
			want:    `invalid character '\n' (\u{a}) in literal true (expecting 'e')`,
		},
		{
			name:    "no match passes through",
			message: "unexpected end of JSON input",
			want:    "unexpected end of JSON input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Go().Enhance(tt.message); got != tt.want {
				t.Errorf("Enhance(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestResolveOffsetEmptyText(t *testing.T) {
	if _, ok := ResolveOffset("", 0); ok {
		t.Error("empty text has no resolvable position")
	}
}
