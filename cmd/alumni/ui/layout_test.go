package ui

import "testing"

func TestNewLayoutConfigDefaults(t *testing.T) {
	l := NewLayoutConfig(0, 0, 0)
	if l.TerminalWidth != DefaultTerminalWidth || l.TerminalHeight != DefaultTerminalHeight {
		t.Errorf("expected default terminal size, got %dx%d", l.TerminalWidth, l.TerminalHeight)
	}
	if l.CardWidth != DefaultCardWidth {
		t.Errorf("expected default card width, got %d", l.CardWidth)
	}
}

func TestGridColumns(t *testing.T) {
	tests := []struct {
		width, card, want int
	}{
		{100, 30, 3},
		{120, 24, 4},
		{62, 30, 1},
		{40, 30, 1}, // compact
	}
	for _, tt := range tests {
		l := NewLayoutConfig(tt.width, 30, tt.card)
		if got := l.GridColumns(); got != tt.want {
			t.Errorf("GridColumns(width=%d, card=%d) = %d, want %d", tt.width, tt.card, got, tt.want)
		}
	}
}

func TestCardWidthCappedToContent(t *testing.T) {
	l := NewLayoutConfig(30, 20, 50)
	if l.CardWidth != l.ContentWidth() {
		t.Errorf("card width %d should be capped to %d", l.CardWidth, l.ContentWidth())
	}
}

func TestOverlaySizing(t *testing.T) {
	l := NewLayoutConfig(200, 40, 0)
	if got := l.OverlayWidth(); got != OverlayMaxWidth {
		t.Errorf("OverlayWidth = %d, want %d", got, OverlayMaxWidth)
	}
	if got := l.OverlayBodyHeight(5); got != 5 {
		t.Errorf("short bodies should not scroll, got %d", got)
	}
	if got := l.OverlayBodyHeight(500); got != 40-OverlayMarginV*2-OverlayChromeV {
		t.Errorf("long bodies should be clamped, got %d", got)
	}
}

func TestZoneContains(t *testing.T) {
	z := Zone{X: 2, Y: 3, W: 4, H: 2}
	if !z.Contains(2, 3) || !z.Contains(5, 4) {
		t.Error("expected corners inside")
	}
	if z.Contains(6, 3) || z.Contains(2, 5) || z.Contains(1, 3) {
		t.Error("expected points outside")
	}
}
