package cli

import (
	"strings"
)

// Table is a simple column-aligned text table. Cells containing ANSI escape
// sequences keep their printable width for alignment purposes.
type Table struct {
	headers []string
	rows    [][]string
	padding int
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		padding: 2, // 2 spaces between columns
	}
}

// AddRow adds a row to the table. Short rows are padded to the header count
// and long rows truncated.
func (t *Table) AddRow(row []string) {
	if len(row) != len(t.headers) {
		newRow := make([]string, len(t.headers))
		copy(newRow, row)
		t.rows = append(t.rows, newRow)
		return
	}
	t.rows = append(t.rows, row)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	colWidths := make([]int, len(t.headers))
	for i, h := range t.headers {
		colWidths[i] = printableWidth(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if w := printableWidth(cell); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}

	gap := strings.Repeat(" ", t.padding)
	var result strings.Builder

	parts := make([]string, len(t.headers))
	for i, h := range t.headers {
		parts[i] = padRight(h, colWidths[i])
	}
	result.WriteString(strings.TrimRight(strings.Join(parts, gap), " "))
	result.WriteString("\n")

	for i, w := range colWidths {
		parts[i] = strings.Repeat("-", w)
	}
	result.WriteString(strings.Join(parts, gap))
	result.WriteString("\n")

	for _, row := range t.rows {
		for i, cell := range row {
			parts[i] = padRight(cell, colWidths[i])
		}
		result.WriteString(strings.TrimRight(strings.Join(parts, gap), " "))
		result.WriteString("\n")
	}

	return result.String()
}

// padRight pads a string with spaces on the right to the desired printable
// width.
func padRight(s string, width int) string {
	w := printableWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// printableWidth is the cell width with ANSI escape sequences removed.
func printableWidth(s string) int {
	width := 0
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			width++
		}
	}
	return width
}
