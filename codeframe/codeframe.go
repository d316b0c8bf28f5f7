// Package codeframe renders a bounded excerpt of source text with a caret
// marking a single location, for human-friendly parse error reporting.
package codeframe

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/parsekit/jsondiag/position"
)

const (
	// DefaultLinesAbove is the number of context lines shown before the
	// marked line.
	DefaultLinesAbove = 2
	// DefaultLinesBelow is the number of context lines shown after the
	// marked line.
	DefaultLinesBelow = 3
)

// Options controls how a frame is rendered.
type Options struct {
	// Highlight adds terminal styling. When false the output is plain
	// text with no escape codes, byte-identical across environments.
	Highlight bool
	// LinesAbove and LinesBelow bound the context window around the
	// marked line. Zero means the default.
	LinesAbove int
	LinesBelow int
}

// Render produces a code frame for pos within text. The window of lines is
// clamped to the available line range, the marked line is prefixed with a
// ">" gutter marker, and a caret line is placed beneath it with the caret
// aligned under pos.Column (counted in code points).
func Render(text string, pos position.Position, opts Options) string {
	above := opts.LinesAbove
	if above <= 0 {
		above = DefaultLinesAbove
	}
	below := opts.LinesBelow
	if below <= 0 {
		below = DefaultLinesBelow
	}

	lines := splitLines(text)

	target := pos.Line
	if target < 1 {
		target = 1
	}
	if target > len(lines) {
		target = len(lines)
	}

	first := target - above
	if first < 1 {
		first = 1
	}
	last := target + below
	if last > len(lines) {
		last = len(lines)
	}

	gutterWidth := len(fmt.Sprintf("%d", last))

	markerColor := fmt.Sprint
	gutterColor := fmt.Sprint
	if opts.Highlight {
		markerColor = color.New(color.FgRed, color.Bold).Sprint
		gutterColor = color.New(color.FgCyan, color.Bold).Sprint
	}

	var b strings.Builder
	for n := first; n <= last; n++ {
		if n > first {
			b.WriteByte('\n')
		}
		gutter := fmt.Sprintf("%*d |", gutterWidth, n)
		if n == target {
			b.WriteString(markerColor(">"))
			b.WriteByte(' ')
			b.WriteString(gutterColor(gutter))
			if line := lines[n-1]; line != "" {
				b.WriteByte(' ')
				b.WriteString(line)
			}
			b.WriteByte('\n')
			b.WriteString("  ")
			b.WriteString(gutterColor(fmt.Sprintf("%*s |", gutterWidth, "")))
			b.WriteByte(' ')
			b.WriteString(strings.Repeat(" ", caretIndent(pos.Column)))
			b.WriteString(markerColor("^"))
		} else {
			b.WriteString("  ")
			b.WriteString(gutterColor(gutter))
			if line := lines[n-1]; line != "" {
				b.WriteByte(' ')
				b.WriteString(line)
			}
		}
	}
	return b.String()
}

func caretIndent(column int) int {
	if column < 1 {
		return 0
	}
	return column - 1
}

// splitLines splits text on "\r\n", "\n" and lone "\r" so that line
// numbering matches position.FromOffset.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
