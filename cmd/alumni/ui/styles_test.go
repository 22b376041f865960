package ui

import (
	"testing"

	"alumnidash/internal/status"
)

func TestDetectTheme(t *testing.T) {
	t.Setenv("COLORFGBG", "15;0")
	if dark := DetectTheme(); !dark.IsDark {
		t.Fatalf("expected dark theme for a black background")
	}

	t.Setenv("COLORFGBG", "0;default;15")
	if light := DetectTheme(); light.IsDark {
		t.Fatalf("expected light theme for a white background")
	}

	t.Setenv("COLORFGBG", "")
	if light := DetectTheme(); light.IsDark {
		t.Fatalf("expected light theme when COLORFGBG is unset")
	}
}

func TestThemeFor(t *testing.T) {
	t.Setenv("COLORFGBG", "15;0")
	if ThemeFor("light").IsDark {
		t.Error("light must not auto-detect")
	}
	if !ThemeFor("DARK").IsDark {
		t.Error("theme names are case-insensitive")
	}
	if !ThemeFor("auto").IsDark {
		t.Error("auto should follow the terminal")
	}
}

func TestBadge(t *testing.T) {
	s := NewStyles(LightTheme())
	if got := s.Badge(status.Describe(status.Offered)); got != "🎉 Offered" {
		t.Errorf("Badge(OFFERED) = %q", got)
	}
	if got := s.Badge(status.Describe("ARCHIVED")); got != "" {
		t.Errorf("unknown status should render no badge, got %q", got)
	}
}
