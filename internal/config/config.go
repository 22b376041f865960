// Package config loads alumnidash configuration from .alumni/config.yaml
// with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"alumnidash/internal/catalog"
	"alumnidash/internal/dashboard"

	"gopkg.in/yaml.v3"
)

// DirName is the per-workspace directory holding config, logs and data.
const DirName = ".alumni"

// Config holds all alumnidash configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Terminal dashboard
	UI UIConfig `yaml:"ui"`

	// Record source
	Catalog CatalogConfig `yaml:"catalog"`

	// Stats panel
	Stats StatsConfig `yaml:"stats"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// CatalogConfig selects where records come from.
type CatalogConfig struct {
	// Source is empty for the built-in fixtures, a .yaml/.yml file, or a
	// SQLite database file.
	Source string `yaml:"source"`

	// Driver is the database/sql driver for SQLite sources: "sqlite"
	// (pure Go) or "sqlite3" (cgo).
	Driver string `yaml:"driver"`

	// LoadTimeout bounds reading a SQLite source.
	LoadTimeout string `yaml:"load_timeout"`
}

// StatsConfig configures the stats panel.
type StatsConfig struct {
	Mode string `yaml:"mode"` // derived, static
}

// Supported catalog drivers.
const (
	DriverSQLite  = "sqlite"
	DriverSQLite3 = "sqlite3"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "alumnidash",
		Version: "1.0.0",

		UI: *DefaultUIConfig(),

		Catalog: CatalogConfig{
			Driver:      DriverSQLite,
			LoadTimeout: "10s",
		},

		Stats: StatsConfig{
			Mode: dashboard.StatsDerived.String(),
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// DefaultPath returns the config path inside workspace.
func DefaultPath(workspace string) string {
	return filepath.Join(workspace, DirName, "config.yaml")
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetLoadTimeout returns the catalog load timeout as a duration.
func (c *Config) GetLoadTimeout() time.Duration {
	d, err := time.ParseDuration(c.Catalog.LoadTimeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// GetStatsMode returns the parsed stats mode, defaulting to derived.
func (c *Config) GetStatsMode() dashboard.StatsMode {
	m, err := dashboard.ParseStatsMode(c.Stats.Mode)
	if err != nil {
		return dashboard.StatsDerived
	}
	return m
}

// GetDefaultCategory returns the starting tab, defaulting to the first
// category.
func (c *Config) GetDefaultCategory() catalog.Category {
	if c.UI.DefaultCategory == "" {
		return catalog.Categories()[0]
	}
	cat, err := catalog.ParseCategory(c.UI.DefaultCategory)
	if err != nil {
		return catalog.Categories()[0]
	}
	return cat
}

// ValidThemes lists the accepted ui.theme values.
var ValidThemes = []string{"auto", "light", "dark"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !contains(ValidThemes, c.UI.Theme) {
		return fmt.Errorf("invalid ui.theme: %q (valid: %v)", c.UI.Theme, ValidThemes)
	}
	if c.UI.DefaultCategory != "" {
		if _, err := catalog.ParseCategory(c.UI.DefaultCategory); err != nil {
			return fmt.Errorf("invalid ui.default_category: %w", err)
		}
	}
	if c.UI.CardWidth != 0 && c.UI.CardWidth < MinCardWidth {
		return fmt.Errorf("ui.card_width must be >= %d", MinCardWidth)
	}
	if c.Catalog.Driver != DriverSQLite && c.Catalog.Driver != DriverSQLite3 {
		return fmt.Errorf("invalid catalog.driver: %q (valid: %s, %s)", c.Catalog.Driver, DriverSQLite, DriverSQLite3)
	}
	if c.Catalog.LoadTimeout != "" {
		if _, err := time.ParseDuration(c.Catalog.LoadTimeout); err != nil {
			return fmt.Errorf("invalid catalog.load_timeout: %w", err)
		}
	}
	if _, err := dashboard.ParseStatsMode(c.Stats.Mode); err != nil {
		return fmt.Errorf("invalid stats.mode: %w", err)
	}
	if !contains(ValidLogLevels, c.Logging.Level) {
		return fmt.Errorf("invalid logging.level: %q (valid: %v)", c.Logging.Level, ValidLogLevels)
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
