// Package errors renders collected parse errors as terminal diagnostics
// in a Rust-like style: an "error:" header, a location arrow, the source
// line, and a caret underline marking the faulty region.
package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Formatter formats diagnostics, optionally with ANSI colors.
type Formatter struct {
	// UseColor enables ANSI color codes in output.
	UseColor bool
}

// NewFormatter creates a new error formatter.
func NewFormatter(useColor bool) *Formatter {
	return &Formatter{UseColor: useColor}
}

// UseColor is the only gate on colored output, so the Color values are
// created with color forced on regardless of TTY detection.
func newColor(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

var (
	colorHeader   = newColor(color.FgRed, color.Bold)
	colorBracket  = newColor(color.FgHiBlack)
	colorLocation = newColor(color.FgCyan)
	colorGutter   = newColor(color.FgHiBlack)
	colorCaret    = newColor(color.FgHiRed)
)

// FormattedError is one diagnostic ready for display.
type FormattedError struct {
	Kind        string            // "error", "syntax error", ...
	Message     string            // the diagnostic message
	Filename    string            // source file name; may be empty
	Line        int               // 1-indexed line of the fault
	Column      int               // 1-indexed column of the fault
	EndColumn   int               // last column to underline; 0 for a single caret
	SourceLines []SourceLineEntry // source context
}

// SourceLineEntry is a line of source code with its 1-indexed number.
type SourceLineEntry struct {
	Number int
	Text   string
	IsMain bool // true for the line carrying the fault
}

func (f *Formatter) paint(c *color.Color, s string) string {
	if f.UseColor {
		return c.Sprint(s)
	}
	return s
}

// Format renders the diagnostic as a string.
func (f *Formatter) Format(err *FormattedError) string {
	return f.FormatWithPrefix(err, "")
}

// FormatWithPrefix renders the diagnostic with an optional bracketed
// prefix in the header, such as "[1/5]" when printing an error list.
func (f *Formatter) FormatWithPrefix(err *FormattedError, prefix string) string {
	var b strings.Builder

	gutterWidth := 2
	if err.Line >= 100 {
		gutterWidth = len(fmt.Sprintf("%d", err.Line))
	}

	f.writeHeader(&b, err, prefix)
	f.writeLocation(&b, err, gutterWidth)
	f.writeSource(&b, err, gutterWidth)

	return b.String()
}

// writeHeader writes a line like `error[1/5]: unexpected ")"`.
func (f *Formatter) writeHeader(b *strings.Builder, err *FormattedError, prefix string) {
	label := "error"
	if err.Kind != "" {
		label = err.Kind
	}
	b.WriteString(f.paint(colorHeader, label))
	if prefix != "" {
		b.WriteString(f.paint(colorBracket, fmt.Sprintf("[%s]", prefix)))
	}
	b.WriteString(": ")
	b.WriteString(err.Message)
	b.WriteString("\n")
}

// writeLocation writes a line like `  --> main.boba:10:5`.
func (f *Formatter) writeLocation(b *strings.Builder, err *FormattedError, gutterWidth int) {
	if err.Line == 0 && err.Filename == "" {
		return
	}
	b.WriteString(strings.Repeat(" ", gutterWidth))
	b.WriteString(f.paint(colorLocation, "-->"))
	b.WriteString(" ")

	var loc string
	if err.Filename != "" {
		loc = err.Filename
		if err.Line > 0 {
			loc += fmt.Sprintf(":%d:%d", err.Line, err.Column)
		}
	} else if err.Line > 0 {
		loc = fmt.Sprintf("%d:%d", err.Line, err.Column)
	}
	b.WriteString(f.paint(colorLocation, loc))
	b.WriteString("\n")
}

// writeSource writes the source context with a caret underline below the
// main line:
//
//	 |
//	2 | let b = ;
//	 |         ^
func (f *Formatter) writeSource(b *strings.Builder, err *FormattedError, gutterWidth int) {
	if len(err.SourceLines) == 0 {
		return
	}
	padding := strings.Repeat(" ", gutterWidth)

	b.WriteString(f.paint(colorGutter, padding))
	b.WriteString(f.paint(colorGutter, " |\n"))

	for _, line := range err.SourceLines {
		b.WriteString(f.paint(colorGutter, fmt.Sprintf("%*d", gutterWidth, line.Number)))
		b.WriteString(f.paint(colorGutter, " | "))
		b.WriteString(line.Text)
		b.WriteString("\n")

		if line.IsMain && err.Column > 0 {
			b.WriteString(f.paint(colorGutter, padding))
			b.WriteString(f.paint(colorGutter, " | "))
			b.WriteString(strings.Repeat(" ", err.Column-1))
			caretLen := 1
			if err.EndColumn > err.Column {
				caretLen = err.EndColumn - err.Column + 1
			}
			b.WriteString(f.paint(colorCaret, strings.Repeat("^", caretLen)))
			b.WriteString("\n")
		}
	}
}

// FormatMultiple renders a list of diagnostics, numbering them when there
// is more than one and appending a summary line.
func (f *Formatter) FormatMultiple(errs []*FormattedError) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return f.Format(errs[0])
	}

	var b strings.Builder
	total := len(errs)
	for i, err := range errs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(f.FormatWithPrefix(err, fmt.Sprintf("%d/%d", i+1, total)))
	}
	b.WriteString("\n")
	b.WriteString(f.paint(colorHeader, fmt.Sprintf("found %d errors", total)))
	b.WriteString("\n")
	return b.String()
}
