package ui

import (
	"strings"

	"alumnidash/internal/dashboard"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	closeGlyph  = "×"
	closeButton = " Close "
)

// renderOverlay draws the detail box centered over a dimmed copy of page
// and records the overlay hit areas in f.
func (m Model) renderOverlay(l LayoutConfig, page string, d dashboard.DetailView, f *frame) string {
	outer := l.OverlayWidth()
	inner := outer - OverlayBorderPad*2

	closeIcon := m.styles.CloseIcon.Render(closeGlyph)
	iconW := lipgloss.Width(closeIcon)
	heading := lipgloss.NewStyle().MaxWidth(inner - iconW - 1).Render(m.styles.OverlayTitle.Render(d.Heading))
	gap := inner - lipgloss.Width(heading) - iconW
	if gap < 1 {
		gap = 1
	}
	titleRow := heading + strings.Repeat(" ", gap) + closeIcon

	badgeRow := m.styles.Muted.Render(d.Category.Icon() + " " + d.Category.Title())
	if badge := m.styles.Badge(d.Badge); badge != "" {
		badgeRow = badge + "  " + badgeRow
	}

	button := m.styles.Button.Render(closeButton)
	buttonW := lipgloss.Width(button)
	buttonRow := strings.Repeat(" ", max(inner-buttonW, 0)) + button

	body := lipgloss.JoinVertical(lipgloss.Left,
		titleRow,
		badgeRow,
		m.styles.RenderDivider(inner),
		m.overlay.View(),
		"",
		buttonRow,
	)
	// Width excludes the border but includes padding
	box := m.styles.Overlay.Width(outer - 2).Render(body)
	boxW, boxH := lipgloss.Width(box), lipgloss.Height(box)

	x := max((l.TerminalWidth-boxW)/2, 0)
	y := max((l.TerminalHeight-boxH)/2, 0)

	f.overlay = Zone{X: x, Y: y, W: boxW, H: boxH}
	f.closeIcon = Zone{X: x + OverlayBorderPad + inner - iconW, Y: y + 1, W: iconW, H: 1}
	f.closeButton = Zone{X: x + OverlayBorderPad + inner - buttonW, Y: y + boxH - 2, W: buttonW, H: 1}

	return m.composite(l, page, box, x, y)
}

// composite places box at (x, y) over a dimmed, colorless page.
func (m Model) composite(l LayoutConfig, page, box string, x, y int) string {
	bg := strings.Split(ansi.Strip(page), "\n")
	height := max(l.TerminalHeight, len(bg))
	for len(bg) < height {
		bg = append(bg, "")
	}

	boxLines := strings.Split(box, "\n")
	out := make([]string, height)
	for i, line := range bg {
		if pad := l.TerminalWidth - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		row := i - y
		if row < 0 || row >= len(boxLines) {
			out[i] = m.styles.Scrim.Render(line)
			continue
		}
		left := ansi.Truncate(line, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(line, x+lipgloss.Width(boxLines[row]), "")
		out[i] = m.styles.Scrim.Render(left) + boxLines[row] + m.styles.Scrim.Render(right)
	}
	return strings.Join(out, "\n")
}

// renderFields lays detail fields out two per row; full-width fields and
// compact overlays get a row each.
func (m Model) renderFields(d dashboard.DetailView, width int) string {
	half := (width - 2) / 2
	twoColumn := half >= 16

	var rows []string
	var pending []string
	flush := func() {
		switch len(pending) {
		case 0:
		case 1:
			rows = append(rows, pending[0])
		default:
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, pending[0], "  ", pending[1]))
		}
		pending = nil
	}

	for _, field := range d.Fields {
		if field.FullWidth || !twoColumn {
			flush()
			rows = append(rows, m.renderField(field, width))
			continue
		}
		pending = append(pending, m.renderField(field, half))
		if len(pending) == 2 {
			flush()
		}
	}
	flush()
	return strings.Join(rows, "\n\n")
}

func (m Model) renderField(f dashboard.DetailField, width int) string {
	value := m.styles.FieldValue
	if f.Highlight {
		value = m.styles.FieldHighlight
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.FieldLabel.Width(width).Render(f.Label),
		value.Width(width).Render(f.Value),
	)
}
