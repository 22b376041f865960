package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SimpleTable renders static rows for the non-interactive commands.
type SimpleTable struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// NewSimpleTable creates a new SimpleTable with the given title and headers.
func NewSimpleTable(title string, headers ...string) *SimpleTable {
	return &SimpleTable{
		Title:   title,
		Headers: headers,
		Rows:    make([][]string, 0),
	}
}

// AddRow adds a row to the table. Missing cells render empty; extra cells
// are dropped.
func (t *SimpleTable) AddRow(cells ...string) {
	row := make([]string, len(t.Headers))
	copy(row, cells)
	t.Rows = append(t.Rows, row)
}

// View renders the table using the provided styles. A table with no rows
// renders its title and a muted "(none)" line.
func (t *SimpleTable) View(styles Styles) string {
	var sb strings.Builder

	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title))
		sb.WriteString("\n")
	}
	if len(t.Rows) == 0 {
		sb.WriteString(styles.Muted.Render("(none)"))
		sb.WriteString("\n")
		return sb.String()
	}

	// Column widths by display width, so emoji icons line up
	colWidths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		colWidths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}

	headerStyle := styles.Bold.Padding(0, 1)
	rowStyle := styles.Body.Padding(0, 1)
	sep := styles.Muted.Render("│")

	writeRow := func(cells []string, style lipgloss.Style) {
		rendered := make([]string, len(cells))
		for i, cell := range cells {
			// +2 for the padding lipgloss counts inside Width
			rendered[i] = style.Width(colWidths[i] + 2).Render(cell)
		}
		sb.WriteString(strings.Join(rendered, sep))
		sb.WriteString("\n")
	}

	writeRow(t.Headers, headerStyle)

	total := len(colWidths) - 1
	for _, w := range colWidths {
		total += w + 2
	}
	sb.WriteString(styles.RenderDivider(total))
	sb.WriteString("\n")

	for _, row := range t.Rows {
		writeRow(row, rowStyle)
	}
	return sb.String()
}
