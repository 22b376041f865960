// Package ui provides the terminal dashboard for alumnidash: the category
// tab bar, the management portal card with its stats, the preview grid and
// the detail overlay. Colors follow a light/dark palette picked from config
// or the terminal.
package ui

import (
	"os"
	"strconv"
	"strings"

	"alumnidash/internal/status"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	// Light Mode Colors (Default)
	LightBackground = lipgloss.Color("#f4f5f6")
	LightForeground = lipgloss.Color("#1f2a44")
	LightPrimary    = lipgloss.Color("#2b3a67") // Navy
	LightAccent     = lipgloss.Color("#667eea") // Indigo
	LightMuted      = lipgloss.Color("#8a94a6")
	LightBorder     = lipgloss.Color("#d6dae0")
	LightCard       = lipgloss.Color("#ffffff")
	LightScrim      = lipgloss.Color("#c3c8d0")

	// Dark Mode Colors
	DarkBackground = lipgloss.Color("#141d2b")
	DarkForeground = lipgloss.Color("#f2f2f2")
	DarkPrimary    = lipgloss.Color("#a3b4fc")
	DarkAccent     = lipgloss.Color("#764ba2") // Violet
	DarkMuted      = lipgloss.Color("#6b7a90")
	DarkBorder     = lipgloss.Color("#2a3850")
	DarkCard       = lipgloss.Color("#1a2536")
	DarkScrim      = lipgloss.Color("#2a3850")

	// Semantic Colors (same in both modes)
	Destructive = lipgloss.Color("#e53935")
	Success     = lipgloss.Color("#43a047")
	Warning     = lipgloss.Color("#f9a825")
	Info        = lipgloss.Color("#2196F3")
)

// Theme holds the current color scheme
type Theme struct {
	Name       string
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	Scrim      lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Name:       "light",
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
		Scrim:      LightScrim,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Name:       "dark",
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		Scrim:      DarkScrim,
		IsDark:     true,
	}
}

// ThemeFor resolves a ui.theme config value. Anything other than "light" or
// "dark" auto-detects.
func ThemeFor(name string) Theme {
	switch strings.ToLower(name) {
	case "light":
		return LightTheme()
	case "dark":
		return DarkTheme()
	default:
		return DetectTheme()
	}
}

// DetectTheme picks dark mode when COLORFGBG reports a dark background,
// light mode otherwise.
func DetectTheme() Theme {
	// Format is usually "foreground;background" (sometimes with a middle field)
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if bgIdx, err := strconv.Atoi(parts[len(parts)-1]); err == nil {
			// 0-6 and 8 (dark grey) are dark backgrounds
			if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
				return DarkTheme()
			}
		}
	}
	return LightTheme()
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	// Layout
	Header   lipgloss.Style
	Subtitle lipgloss.Style
	Footer   lipgloss.Style
	Section  lipgloss.Style

	// Text
	Title lipgloss.Style
	Body  lipgloss.Style
	Muted lipgloss.Style
	Bold  lipgloss.Style

	// Tabs
	Tab       lipgloss.Style
	TabActive lipgloss.Style

	// Cards
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardHeading  lipgloss.Style
	CardFooter   lipgloss.Style

	// Portal
	Portal    lipgloss.Style
	StatValue lipgloss.Style
	StatLabel lipgloss.Style
	Button    lipgloss.Style

	// Overlay
	Overlay        lipgloss.Style
	OverlayTitle   lipgloss.Style
	CloseIcon      lipgloss.Style
	FieldLabel     lipgloss.Style
	FieldValue     lipgloss.Style
	FieldHighlight lipgloss.Style
	Scrim          lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Section: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Underline(true),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Tab: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		TabActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(theme.Accent).
			Bold(true).
			Padding(0, 1),

		Card: card,

		CardSelected: card.
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(theme.Accent),

		CardHeading: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		CardFooter: lipgloss.NewStyle().
			Foreground(theme.Accent),

		Portal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Accent).
			Padding(0, 2),

		StatValue: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		StatLabel: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(theme.Accent).
			Bold(true),

		Overlay: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(theme.Accent).
			Padding(0, 1),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		CloseIcon: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		FieldLabel: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Bold(true),

		FieldValue: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		FieldHighlight: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Scrim: lipgloss.NewStyle().
			Foreground(theme.Scrim),

		Success: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(Info),
	}
}

// badgeColors maps status classes to their badge color. Classes not listed
// fall back to the outcome color.
var badgeColors = map[string]lipgloss.Color{
	"status-scheduled": Info,
	"status-progress":  Info,
}

// Badge renders a status badge. Unknown statuses render as an empty
// string so callers never show a blank pill.
func (s Styles) Badge(d status.Descriptor) string {
	if !d.Known() {
		return ""
	}
	color, ok := badgeColors[d.Class]
	if !ok {
		switch d.Outcome {
		case status.OutcomeSuccess:
			color = Success
		case status.OutcomeFailure:
			color = Destructive
		default:
			color = Warning
		}
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(d.Badge())
}

// RenderDivider returns a horizontal divider
func (s Styles) RenderDivider(width int) string {
	if width < 1 {
		return ""
	}
	return s.Muted.Render(strings.Repeat("─", width))
}
