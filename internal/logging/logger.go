// Package logging provides config-driven categorized file logging for
// alumnidash. Logs are written to .alumni/logs/ with one file per category.
// Logging is controlled by logging.debug_mode in .alumni/config.yaml - when
// false, every category logger is a no-op.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"alumnidash/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot      Category = "boot"      // Startup, config
	CategoryCatalog   Category = "catalog"   // Catalog loading and validation
	CategoryStore     Category = "store"     // SQLite catalog source
	CategorySelection Category = "selection" // Selection state transitions
	CategoryRender    Category = "render"    // Grid, overlay and stats rendering
	CategoryPortal    Category = "portal"    // Management portal intents
)

type categoryLogger struct {
	logger *zap.Logger
	file   *os.File
}

var (
	loggers   = make(map[Category]*categoryLogger)
	loggersMu sync.RWMutex

	logsDir string
	cfg     config.LoggingConfig
	cfgMu   sync.RWMutex
	level   = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

// Initialize sets up the logging directory for workspace using lc.
// Should be called once at startup.
func Initialize(workspace string, lc config.LoggingConfig) error {
	if workspace == "" {
		return fmt.Errorf("workspace path required")
	}

	CloseAll()

	cfgMu.Lock()
	cfg = lc
	logsDir = filepath.Join(workspace, config.DirName, "logs")
	cfgMu.Unlock()

	lvl, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	level.SetLevel(lvl)

	if !lc.DebugMode {
		return nil
	}

	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	boot := Get(CategoryBoot)
	boot.Info("logging initialized",
		zap.String("workspace", workspace),
		zap.String("logs_dir", logsDir),
		zap.Stringer("level", lvl),
	)
	return nil
}

// IsCategoryEnabled returns whether a specific category is enabled
func IsCategoryEnabled(category Category) bool {
	cfgMu.RLock()
	defer cfgMu.RUnlock()
	return cfg.IsCategoryEnabled(string(category))
}

// Get returns (or creates) the logger for category. Returns a no-op logger
// if debug mode or the category is disabled.
func Get(category Category) *zap.Logger {
	if !IsCategoryEnabled(category) {
		return zap.NewNop()
	}

	loggersMu.RLock()
	if l, ok := loggers[category]; ok {
		loggersMu.RUnlock()
		return l.logger
	}
	loggersMu.RUnlock()

	loggersMu.Lock()
	defer loggersMu.Unlock()

	// Double-check after acquiring write lock
	if l, ok := loggers[category]; ok {
		return l.logger
	}

	cfgMu.RLock()
	dir, format := logsDir, cfg.Format
	cfgMu.RUnlock()
	if dir == "" {
		return zap.NewNop()
	}

	// Date prefix for easy rotation
	filename := fmt.Sprintf("%s_%s.log", time.Now().Format("2006-01-02"), category)
	logPath := filepath.Join(dir, filename)

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[logging] Warning: could not open log file %s: %v\n", logPath, err)
		return zap.NewNop()
	}

	core := zapcore.NewCore(newEncoder(format), zapcore.AddSync(file), level)
	l := &categoryLogger{
		logger: zap.New(core).With(zap.String("cat", string(category))),
		file:   file,
	}
	loggers[category] = l
	return l.logger
}

func newEncoder(format string) zapcore.Encoder {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if format == "console" || format == "text" {
		return zapcore.NewConsoleEncoder(encCfg)
	}
	return zapcore.NewJSONEncoder(encCfg)
}

// CloseAll flushes and closes all open log files (call at shutdown)
func CloseAll() {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	for _, l := range loggers {
		_ = l.logger.Sync()
		if l.file != nil {
			l.file.Close()
		}
	}
	loggers = make(map[Category]*categoryLogger)
}

// NewCLI builds the stderr logger used by non-interactive commands.
func NewCLI(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, nil
}

// =============================================================================
// CONVENIENCE FUNCTIONS - Quick logging without getting a logger first
// These are no-ops if the category is disabled
// =============================================================================

// Boot logs to the boot category
func Boot(msg string, fields ...zap.Field) {
	Get(CategoryBoot).Info(msg, fields...)
}

// BootError logs an error to the boot category
func BootError(msg string, err error, fields ...zap.Field) {
	Get(CategoryBoot).Error(msg, append(fields, zap.Error(err))...)
}

// Catalog logs to the catalog category
func Catalog(msg string, fields ...zap.Field) {
	Get(CategoryCatalog).Info(msg, fields...)
}

// Portal logs to the portal category
func Portal(msg string, fields ...zap.Field) {
	Get(CategoryPortal).Info(msg, fields...)
}
