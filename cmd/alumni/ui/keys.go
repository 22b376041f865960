package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the dashboard key bindings.
type KeyMap struct {
	NextTab     key.Binding
	PrevTab     key.Binding
	Webinars    key.Binding
	Mentorships key.Binding
	Placements  key.Binding
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Open        key.Binding
	Portal      key.Binding
	Close       key.Binding
	CloseIcon   key.Binding
	CloseButton key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next category")),
		PrevTab:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev category")),
		Webinars:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "webinars")),
		Mentorships: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "mentorships")),
		Placements:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "placements")),
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Open:        key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "view details")),
		Portal:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "open portal")),
		Close:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		CloseIcon:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "close")),
		CloseButton: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "close")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// gridKeys is the help.KeyMap shown while browsing the grid.
type gridKeys struct{ KeyMap }

func (k gridKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Open, k.Portal, k.Help, k.Quit}
}

func (k gridKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.Webinars, k.Mentorships, k.Placements},
		{k.Up, k.Down, k.Left, k.Right, k.Open},
		{k.Portal, k.Help, k.Quit},
	}
}

// overlayKeys is the help.KeyMap shown while the detail overlay is open.
type overlayKeys struct{ KeyMap }

func (k overlayKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Close, k.Up, k.Down, k.NextTab, k.Quit}
}

func (k overlayKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Close, k.CloseIcon, k.CloseButton},
		{k.Up, k.Down},
		{k.NextTab, k.PrevTab, k.Quit},
	}
}
