// Package ui layout constants for consistent spacing and dimensions
package ui

// Layout constants for the dashboard frame
const (
	// Terminal size assumed before the first WindowSizeMsg
	DefaultTerminalWidth  = 100
	DefaultTerminalHeight = 32

	// Page margins
	PageMarginH = 1

	// Preview cards
	DefaultCardWidth = 30
	CardGap          = 1
	CardBodyLines    = 6 // heading, badge, three fields, footer

	// Detail overlay
	OverlayMaxWidth  = 72
	OverlayMarginH   = 4
	OverlayMarginV   = 2
	OverlayChromeV   = 7 // borders, title, badge, divider, spacer, button row
	OverlayBorderPad = 2 // border + horizontal padding on each side

	// Responsive breakpoints
	CompactModeWidth = 60
)

// LayoutConfig provides computed layout dimensions based on terminal size
type LayoutConfig struct {
	TerminalWidth  int
	TerminalHeight int
	CardWidth      int
	IsCompact      bool
}

// NewLayoutConfig creates a layout configuration for the given terminal
// size. cardWidth 0 picks the default card width.
func NewLayoutConfig(width, height, cardWidth int) LayoutConfig {
	if width <= 0 {
		width = DefaultTerminalWidth
	}
	if height <= 0 {
		height = DefaultTerminalHeight
	}
	if cardWidth <= 0 {
		cardWidth = DefaultCardWidth
	}
	l := LayoutConfig{
		TerminalWidth:  width,
		TerminalHeight: height,
		CardWidth:      cardWidth,
		IsCompact:      width < CompactModeWidth,
	}
	if l.CardWidth > l.ContentWidth() {
		l.CardWidth = l.ContentWidth()
	}
	return l
}

// ContentWidth returns the usable page width
func (l LayoutConfig) ContentWidth() int {
	w := l.TerminalWidth - PageMarginH*2
	if w < 1 {
		return 1
	}
	return w
}

// GridColumns returns how many cards fit side by side
func (l LayoutConfig) GridColumns() int {
	if l.IsCompact {
		return 1
	}
	cols := (l.ContentWidth() + CardGap) / (l.CardWidth + CardGap)
	if cols < 1 {
		return 1
	}
	return cols
}

// OverlayWidth returns the outer width of the detail overlay box
func (l LayoutConfig) OverlayWidth() int {
	w := l.TerminalWidth - OverlayMarginH*2
	if w > OverlayMaxWidth {
		w = OverlayMaxWidth
	}
	if w < OverlayBorderPad*2+10 {
		w = OverlayBorderPad*2 + 10
	}
	return w
}

// OverlayBodyHeight returns how many field lines the overlay shows before
// scrolling
func (l LayoutConfig) OverlayBodyHeight(lines int) int {
	max := l.TerminalHeight - OverlayMarginV*2 - OverlayChromeV
	if max < 3 {
		max = 3
	}
	if lines < max {
		return lines
	}
	return max
}

// Zone is a rectangular hit area in terminal cells. X and Y are the top
// left corner.
type Zone struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) falls inside z.
func (z Zone) Contains(x, y int) bool {
	return x >= z.X && x < z.X+z.W && y >= z.Y && y < z.Y+z.H
}
