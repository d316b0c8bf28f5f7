// Package core provides the shared source buffer type.
package core

// SourceFile represents a named JSON source with its content. The content
// is never mutated once parsing begins; every offset and position a
// diagnostic carries refers to this exact text.
type SourceFile struct {
	Path string
	Data string
}

// NewSourceFile creates a new SourceFile.
func NewSourceFile(path, data string) SourceFile {
	return SourceFile{
		Path: path,
		Data: data,
	}
}
