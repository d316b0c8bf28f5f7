package jsondiag

import "strings"

// Diagnostic is the error returned when JSON parsing fails. It carries the
// enhanced base message, an optional file name for display, and the
// rendered code frames when a failure location could be determined.
//
// FileName and the frames may be set after construction; Message composes
// them on every read, so attaching a file name later changes what
// subsequent reads return.
type Diagnostic struct {
	base string

	// FileName, when non-empty, is appended to the message for display.
	// It has no effect on location computation.
	FileName string

	// CodeFrame is the terminal-styled excerpt of the source around the
	// failure; RawCodeFrame is the same excerpt with no styling, suitable
	// for logs. Both are empty when no location was available.
	CodeFrame    string
	RawCodeFrame string
}

func newDiagnostic(base string) *Diagnostic {
	return &Diagnostic{base: base}
}

// Message returns the composed diagnostic text: the base message, followed
// by " in <FileName>" when a file name is set, followed by the highlighted
// code frame when one was rendered.
func (d *Diagnostic) Message() string {
	var b strings.Builder
	b.WriteString(d.base)
	if d.FileName != "" {
		b.WriteString(" in ")
		b.WriteString(d.FileName)
	}
	if d.CodeFrame != "" {
		b.WriteString("\n\n")
		b.WriteString(d.CodeFrame)
		b.WriteString("\n")
	}
	return b.String()
}

// SetMessage replaces the base message. The file name and code frames are
// untouched and keep composing into subsequent Message reads.
func (d *Diagnostic) SetMessage(base string) {
	d.base = base
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	return d.Message()
}
