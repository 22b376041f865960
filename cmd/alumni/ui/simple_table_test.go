package ui

import (
	"strings"
	"testing"
)

func TestSimpleTable(t *testing.T) {
	table := NewSimpleTable("Placements", "ID", "Alumni", "Company")
	table.AddRow("1", "Rahul Sharma", "Infosys")
	table.AddRow("2", "Ananya Iyer") // short row

	out := table.View(NewStyles(LightTheme()))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected title, header, divider and 2 rows, got %d lines:\n%s", len(lines), out)
	}
	for _, want := range []string{"Placements", "Company", "Rahul Sharma", "Infosys", "Ananya Iyer"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q", want)
		}
	}
}

func TestSimpleTable_Empty(t *testing.T) {
	table := NewSimpleTable("Webinars", "ID")
	out := table.View(NewStyles(LightTheme()))
	if !strings.Contains(out, "(none)") {
		t.Errorf("empty table should say so, got %q", out)
	}
}
