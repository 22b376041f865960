package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOverrides(t *testing.T) {
	t.Run("catalog and theme", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ALUMNI_THEME", "dark")
		t.Setenv("ALUMNI_CATALOG", "/srv/alumni.db")
		t.Setenv("ALUMNI_CATALOG_DRIVER", "sqlite3")

		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())

		assert.Equal(t, "dark", cfg.UI.Theme)
		assert.Equal(t, "/srv/alumni.db", cfg.Catalog.Source)
		assert.Equal(t, DriverSQLite3, cfg.Catalog.Driver)
	})

	t.Run("debug raises level unless set", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ALUMNI_DEBUG", "true")

		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())
		assert.True(t, cfg.Logging.DebugMode)
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("explicit level wins over debug", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ALUMNI_DEBUG", "1")
		t.Setenv("ALUMNI_LOG_LEVEL", "warn")

		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())
		assert.True(t, cfg.Logging.DebugMode)
		assert.Equal(t, "warn", cfg.Logging.Level)
	})

	t.Run("invalid debug flag", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ALUMNI_DEBUG", "sometimes")

		cfg := DefaultConfig()
		assert.Error(t, cfg.applyEnvOverrides())
	})

	t.Run("stats mode", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ALUMNI_STATS_MODE", "static")

		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())
		assert.Equal(t, "static", cfg.Stats.Mode)
	})

	t.Run("empty values leave file settings", func(t *testing.T) {
		clearEnv(t)

		cfg := DefaultConfig()
		cfg.UI.Theme = "light"
		require.NoError(t, cfg.applyEnvOverrides())
		assert.Equal(t, "light", cfg.UI.Theme)
		assert.Equal(t, "info", cfg.Logging.Level)
	})
}
