package config

import (
	"fmt"
	"strconv"

	"github.com/caarlos0/env/v11"
)

// envOverrides lists the environment variables that override the file.
type envOverrides struct {
	Theme         string `env:"ALUMNI_THEME"`
	Catalog       string `env:"ALUMNI_CATALOG"`
	CatalogDriver string `env:"ALUMNI_CATALOG_DRIVER"`
	StatsMode     string `env:"ALUMNI_STATS_MODE"`
	Debug         string `env:"ALUMNI_DEBUG"`
	LogLevel      string `env:"ALUMNI_LOG_LEVEL"`
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	var raw envOverrides
	if err := env.Parse(&raw); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if raw.Theme != "" {
		c.UI.Theme = raw.Theme
	}
	if raw.Catalog != "" {
		c.Catalog.Source = raw.Catalog
	}
	if raw.CatalogDriver != "" {
		c.Catalog.Driver = raw.CatalogDriver
	}
	if raw.StatsMode != "" {
		c.Stats.Mode = raw.StatsMode
	}
	if raw.Debug != "" {
		debug, err := strconv.ParseBool(raw.Debug)
		if err != nil {
			return fmt.Errorf("invalid ALUMNI_DEBUG %q: %w", raw.Debug, err)
		}
		c.Logging.DebugMode = debug
		if debug && raw.LogLevel == "" {
			c.Logging.Level = "debug"
		}
	}
	if raw.LogLevel != "" {
		c.Logging.Level = raw.LogLevel
	}
	return nil
}
