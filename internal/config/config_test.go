package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"alumnidash/internal/catalog"
	"alumnidash/internal/dashboard"
)

// =============================================================================
// CONFIG FILE TESTS
// =============================================================================

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Name != "alumnidash" {
		t.Errorf("expected Name=alumnidash, got %s", cfg.Name)
	}
	if cfg.Catalog.Driver != DriverSQLite {
		t.Errorf("expected Driver=sqlite, got %s", cfg.Catalog.Driver)
	}
	if cfg.GetStatsMode() != dashboard.StatsDerived {
		t.Errorf("expected derived stats by default, got %s", cfg.GetStatsMode())
	}
	if cfg.GetDefaultCategory() != catalog.Webinar {
		t.Errorf("expected webinars tab first, got %s", cfg.GetDefaultCategory())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)

	path := DefaultPath(t.TempDir())

	cfg := DefaultConfig()
	cfg.UI.Theme = "dark"
	cfg.UI.DefaultCategory = "placements"
	cfg.Catalog.Source = "data/catalog.db"
	cfg.Stats.Mode = "static"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.UI.Theme != "dark" {
		t.Errorf("expected Theme=dark, got %s", loaded.UI.Theme)
	}
	if loaded.GetDefaultCategory() != catalog.Placement {
		t.Errorf("expected placements tab, got %s", loaded.GetDefaultCategory())
	}
	if loaded.Catalog.Source != "data/catalog.db" {
		t.Errorf("expected catalog source to round-trip, got %s", loaded.Catalog.Source)
	}
	if loaded.GetStatsMode() != dashboard.StatsStatic {
		t.Errorf("expected static stats, got %s", loaded.GetStatsMode())
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.UI.Theme != "auto" {
		t.Errorf("expected default theme, got %s", cfg.UI.Theme)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("ui: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"theme", func(c *Config) { c.UI.Theme = "neon" }},
		{"category", func(c *Config) { c.UI.DefaultCategory = "events" }},
		{"card width", func(c *Config) { c.UI.CardWidth = 5 }},
		{"driver", func(c *Config) { c.Catalog.Driver = "postgres" }},
		{"timeout", func(c *Config) { c.Catalog.LoadTimeout = "soon" }},
		{"stats", func(c *Config) { c.Stats.Mode = "live" }},
		{"level", func(c *Config) { c.Logging.Level = "trace" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected validation error for %s", tt.name)
			}
		})
	}
}

func TestConfig_Getters(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.GetLoadTimeout(); got != 10*time.Second {
		t.Errorf("expected 10s, got %v", got)
	}
	cfg.Catalog.LoadTimeout = "250ms"
	if got := cfg.GetLoadTimeout(); got != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %v", got)
	}
	cfg.Catalog.LoadTimeout = "garbage"
	if got := cfg.GetLoadTimeout(); got != 10*time.Second {
		t.Errorf("expected fallback 10s, got %v", got)
	}

	cfg.Stats.Mode = "bogus"
	if cfg.GetStatsMode() != dashboard.StatsDerived {
		t.Error("expected derived fallback for invalid stats mode")
	}
	cfg.UI.DefaultCategory = "bogus"
	if cfg.GetDefaultCategory() != catalog.Webinar {
		t.Error("expected first tab fallback for invalid category")
	}
}

func TestLoggingConfig_IsCategoryEnabled(t *testing.T) {
	lc := LoggingConfig{}
	if lc.IsCategoryEnabled("selection") {
		t.Error("categories must be disabled outside debug mode")
	}

	lc.DebugMode = true
	if !lc.IsCategoryEnabled("selection") {
		t.Error("all categories enabled when no filter is set")
	}

	lc.Categories = map[string]bool{"render": false}
	if lc.IsCategoryEnabled("render") {
		t.Error("explicitly disabled category should be off")
	}
	if !lc.IsCategoryEnabled("store") {
		t.Error("unlisted category should default to on")
	}
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ALUMNI_THEME", "ALUMNI_CATALOG", "ALUMNI_CATALOG_DRIVER",
		"ALUMNI_STATS_MODE", "ALUMNI_DEBUG", "ALUMNI_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}
