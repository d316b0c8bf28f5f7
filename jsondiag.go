// Package jsondiag parses JSON through a strict underlying parser and, on
// failure, turns the parser's terse error into a diagnostic with a
// resolved line/column location, a code-frame excerpt of the offending
// source, and an enriched message.
//
// The package never parses JSON itself and never repairs malformed input;
// it only explains the failure the underlying engine reports.
package jsondiag

import (
	"github.com/parsekit/jsondiag/codeframe"
	"github.com/parsekit/jsondiag/core"
	"github.com/parsekit/jsondiag/internal/debug"
	"github.com/parsekit/jsondiag/interpret"
)

// Options configures a parse.
type Options struct {
	// Transform is the optional reviver applied by the engine; nil means
	// identity.
	Transform Transform

	// FileName is attached to the resulting Diagnostic for display only.
	FileName string

	// Engine is the underlying parser; nil means DefaultEngine.
	Engine Engine

	// Interpreter decodes the engine's failures; nil means interpret.Go,
	// which matches DefaultEngine.
	Interpreter interpret.Interpreter

	// LinesAbove and LinesBelow bound the code-frame context window.
	// Zero means the codeframe defaults.
	LinesAbove int
	LinesBelow int
}

// Parse parses text with the default engine. On success it returns the
// decoded value; on malformed input it returns a *Diagnostic.
func Parse(text string) (any, error) {
	return ParseWithOptions(text, Options{})
}

// ParseSourceFile parses a named source, attaching its path to any
// resulting Diagnostic.
func ParseSourceFile(file core.SourceFile) (any, error) {
	return ParseWithOptions(file.Data, Options{FileName: file.Path})
}

// ParseWithOptions invokes the engine and, when it fails with a recognized
// parse error, builds a Diagnostic from the failure. Errors the
// interpreter does not recognize (including Transform errors) are returned
// verbatim, never wrapped and never given a code frame.
func ParseWithOptions(text string, opts Options) (any, error) {
	engine := opts.Engine
	if engine == nil {
		engine = DefaultEngine()
	}
	interpreter := opts.Interpreter
	if interpreter == nil {
		interpreter = interpret.Go()
	}

	value, err := engine.Parse(text, opts.Transform)
	if err == nil {
		return value, nil
	}
	if !interpreter.Recognize(err) {
		debug.Debug("foreign failure, not wrapping", "error", err)
		return nil, err
	}

	diag := newDiagnostic(err.Error())
	diag.FileName = opts.FileName

	if text == "" {
		// There is no position to report in an empty string.
		diag.SetMessage(err.Error() + " while parsing empty string")
		return nil, diag
	}

	diag.SetMessage(interpreter.Enhance(err.Error()))
	pos, ok := interpreter.Locate(text, err)
	if !ok {
		debug.Debug("no location in parse failure", "error", err)
		return nil, diag
	}
	debug.Debug("parse failure located", "line", pos.Line, "column", pos.Column)

	frame := codeframe.Options{LinesAbove: opts.LinesAbove, LinesBelow: opts.LinesBelow}
	frame.Highlight = true
	diag.CodeFrame = codeframe.Render(text, pos, frame)
	frame.Highlight = false
	diag.RawCodeFrame = codeframe.Render(text, pos, frame)
	return nil, diag
}
