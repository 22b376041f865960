package config

// MinCardWidth is the narrowest preview card the grid will lay out.
const MinCardWidth = 24

// UIConfig holds terminal dashboard configuration.
type UIConfig struct {
	// Theme is "auto" (detect from the terminal), "light" or "dark"
	Theme string `yaml:"theme"`

	// DefaultCategory is the tab shown at start (empty = first tab)
	DefaultCategory string `yaml:"default_category,omitempty"`

	// CardWidth fixes the preview card width (0 = fit to terminal)
	CardWidth int `yaml:"card_width,omitempty"`

	// ShowHelp shows the key binding footer
	ShowHelp bool `yaml:"show_help"`

	// Mouse enables click selection and scrim dismissal
	Mouse bool `yaml:"mouse"`

	// ExitOnPortal quits the dashboard after emitting a portal intent
	ExitOnPortal bool `yaml:"exit_on_portal"`
}

// DefaultUIConfig returns sensible UI defaults.
func DefaultUIConfig() *UIConfig {
	return &UIConfig{
		Theme:    "auto",
		ShowHelp: true,
		Mouse:    true,
	}
}
