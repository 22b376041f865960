package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"alumnidash/internal/config"

	"go.uber.org/zap"
)

func resetLogging(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		CloseAll()
		cfgMu.Lock()
		cfg = config.LoggingConfig{}
		logsDir = ""
		cfgMu.Unlock()
	})
}

func readLogs(t *testing.T, dir string, category Category) string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "*_"+string(category)+".log"))
	if err != nil {
		t.Fatalf("glob failed: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected one %s log file, found %d", category, len(matches))
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	return string(data)
}

// TestAllCategoriesLog tests that every category writes its own file when
// debug_mode is true.
func TestAllCategoriesLog(t *testing.T) {
	resetLogging(t)
	ws := t.TempDir()

	if err := Initialize(ws, config.LoggingConfig{Level: "debug", DebugMode: true}); err != nil {
		t.Fatalf("Failed to initialize logging: %v", err)
	}
	if !IsCategoryEnabled(CategoryPortal) {
		t.Fatal("Expected debug mode to enable every category")
	}

	categories := []Category{CategoryBoot, CategoryCatalog, CategoryStore, CategorySelection, CategoryRender, CategoryPortal}
	for _, cat := range categories {
		Get(cat).Debug("hello from " + string(cat))
	}
	CloseAll()

	dir := filepath.Join(ws, config.DirName, "logs")
	for _, cat := range categories {
		content := readLogs(t, dir, cat)
		if !strings.Contains(content, "hello from "+string(cat)) {
			t.Errorf("category %s: message missing from log file", cat)
		}
		if !strings.Contains(content, `"cat":"`+string(cat)+`"`) {
			t.Errorf("category %s: expected JSON category field", cat)
		}
	}
}

func TestProductionModeIsSilent(t *testing.T) {
	resetLogging(t)
	ws := t.TempDir()

	if err := Initialize(ws, config.LoggingConfig{Level: "info"}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	Boot("should not be written")

	if IsCategoryEnabled(CategoryBoot) {
		t.Error("categories must be disabled outside debug mode")
	}
	if Get(CategoryBoot).Core().Enabled(zap.ErrorLevel) {
		t.Error("expected a no-op logger")
	}
	if _, err := os.Stat(filepath.Join(ws, config.DirName, "logs")); !os.IsNotExist(err) {
		t.Error("logs directory should not be created in production mode")
	}
}

func TestCategoryFilterAndLevel(t *testing.T) {
	resetLogging(t)
	ws := t.TempDir()

	lc := config.LoggingConfig{
		Level:      "warn",
		Format:     "console",
		DebugMode:  true,
		Categories: map[string]bool{"render": false},
	}
	if err := Initialize(ws, lc); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	if IsCategoryEnabled(CategoryRender) {
		t.Error("render category should be disabled")
	}
	if !IsCategoryEnabled(CategoryPortal) {
		t.Error("unlisted category should be enabled")
	}

	Portal("info is below the threshold")
	Get(CategoryPortal).Warn("warning is written")
	CloseAll()

	content := readLogs(t, filepath.Join(ws, config.DirName, "logs"), CategoryPortal)
	if strings.Contains(content, "below the threshold") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(content, "warning is written") {
		t.Error("warn message missing")
	}
}

func TestGetReusesLogger(t *testing.T) {
	resetLogging(t)
	if err := Initialize(t.TempDir(), config.LoggingConfig{DebugMode: true}); err != nil {
		t.Fatal(err)
	}
	if Get(CategoryStore) != Get(CategoryStore) {
		t.Error("expected cached logger")
	}
}

func TestInitializeRequiresWorkspace(t *testing.T) {
	if err := Initialize("", config.LoggingConfig{}); err == nil {
		t.Error("expected error for empty workspace")
	}
}

func TestNewCLI(t *testing.T) {
	l, err := NewCLI(true)
	if err != nil {
		t.Fatalf("NewCLI failed: %v", err)
	}
	if !l.Core().Enabled(zap.DebugLevel) {
		t.Error("verbose CLI logger should enable debug")
	}
}
