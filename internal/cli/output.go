// Package cli provides terminal output helpers for inv.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// colorEnabled is set from terminal detection and can be overridden.
var colorEnabled = IsTerminal(os.Stdout)

// SetColorEnabled overrides the color output setting.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled returns whether color output is currently enabled.
func ColorEnabled() bool {
	return colorEnabled
}

// IsTerminal returns true if w is a terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func paint(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + colorReset
}

// Green wraps s in green when colors are enabled.
func Green(s string) string { return paint(colorGreen, s) }

// Red wraps s in red when colors are enabled.
func Red(s string) string { return paint(colorRed, s) }

// Yellow wraps s in yellow when colors are enabled.
func Yellow(s string) string { return paint(colorYellow, s) }

// Gray wraps s in gray when colors are enabled.
func Gray(s string) string { return paint(colorGray, s) }

// DefaultMaxNameWidth caps the item name column of tables.
const DefaultMaxNameWidth = 40

// Align is a column alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Table formats columnar output with automatic column widths.
type Table struct {
	rows      [][]string
	colWidths []int
	aligns    map[int]Align
	maxWidths map[int]int
}

// NewTable creates a new empty table.
func NewTable() *Table {
	return &Table{
		aligns:    make(map[int]Align),
		maxWidths: make(map[int]int),
	}
}

// SetAlign sets the alignment of a column. Columns default to AlignLeft.
func (t *Table) SetAlign(col int, a Align) {
	t.aligns[col] = a
}

// SetMaxWidth caps the visible width of a column; longer cells end in "...".
func (t *Table) SetMaxWidth(col, maxWidth int) {
	t.maxWidths[col] = maxWidth
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cols ...string) {
	for len(t.colWidths) < len(cols) {
		t.colWidths = append(t.colWidths, 0)
	}
	for i, col := range cols {
		if maxW, ok := t.maxWidths[i]; ok {
			col = Truncate(col, maxW)
			cols[i] = col
		}
		if w := visibleWidth(col); w > t.colWidths[i] {
			t.colWidths[i] = w
		}
	}
	t.rows = append(t.rows, cols)
}

// Len returns the number of rows added.
func (t *Table) Len() int {
	return len(t.rows)
}

// Render writes the table to w with columns separated by two spaces.
// The last column is not padded unless it is right aligned.
func (t *Table) Render(w io.Writer) {
	last := len(t.colWidths) - 1
	for _, row := range t.rows {
		parts := make([]string, len(row))
		for i, col := range row {
			pad := strings.Repeat(" ", t.colWidths[i]-visibleWidth(col))
			switch {
			case t.aligns[i] == AlignRight:
				parts[i] = pad + col
			case i == last:
				parts[i] = col
			default:
				parts[i] = col + pad
			}
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	}
}

// Truncate cuts s to maxWidth visible runes, ending in "..." when cut.
// Colored strings are measured without their escape codes.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if visibleWidth(s) <= maxWidth {
		return s
	}

	const ellipsis = "..."
	limit := maxWidth - len(ellipsis)
	if limit < 0 {
		limit = maxWidth
	}

	var b strings.Builder
	visible := 0
	inEscape, hasAnsi := false, false
	for _, r := range s {
		switch {
		case r == '\033':
			inEscape, hasAnsi = true, true
			b.WriteRune(r)
		case inEscape:
			b.WriteRune(r)
			inEscape = r != 'm'
		case visible < limit:
			b.WriteRune(r)
			visible++
		}
	}
	if limit < maxWidth {
		b.WriteString(ellipsis)
	}
	if hasAnsi {
		b.WriteString(colorReset)
	}
	return b.String()
}

// visibleWidth returns the rune count of s excluding ANSI escape codes.
func visibleWidth(s string) int {
	if !strings.ContainsRune(s, '\033') {
		return utf8.RuneCountInString(s)
	}
	width := 0
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\033':
			inEscape = true
		case inEscape:
			inEscape = r != 'm'
		default:
			width++
		}
	}
	return width
}
