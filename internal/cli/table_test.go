package cli

import (
	"strings"
	"testing"
)

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"CODE", "NAME"})
	table.AddRow([]string{"C1", "Red"})
	table.AddRow([]string{"LP-18", "Steel"})

	got := table.Render()
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header, separator, and 2 rows:\n%s", len(lines), got)
	}
	if !strings.HasPrefix(lines[0], "CODE") {
		t.Errorf("header line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "-----") {
		t.Errorf("separator line = %q", lines[1])
	}
	// The CODE column must be wide enough for LP-18, so C1 gets padded.
	if !strings.HasPrefix(lines[2], "C1     Red") {
		t.Errorf("first row = %q, want C1 padded to the LP-18 width", lines[2])
	}
}

func TestTableShortRow(t *testing.T) {
	table := NewTable([]string{"A", "B", "C"})
	table.AddRow([]string{"only"})

	got := table.Render()
	if !strings.Contains(got, "only") {
		t.Errorf("short row missing from output:\n%s", got)
	}
}

func TestTableEmptyHeaders(t *testing.T) {
	table := NewTable(nil)
	if got := table.Render(); got != "" {
		t.Errorf("Render() = %q, want empty", got)
	}
}

func TestPrintableWidthIgnoresANSI(t *testing.T) {
	plain := "#ff0000"
	styled := "#ff0000 \x1b[48;2;255;0;0m      \x1b[0m"
	if got := printableWidth(plain); got != 7 {
		t.Errorf("printableWidth(%q) = %d, want 7", plain, got)
	}
	if got := printableWidth(styled); got != 14 {
		t.Errorf("printableWidth(%q) = %d, want 14", styled, got)
	}
}
