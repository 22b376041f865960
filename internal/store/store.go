// Package store persists the alumni catalog in SQLite. It is a catalog
// source only: the dashboard loads the whole catalog once at start and never
// writes back.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"alumnidash/internal/config"
	"alumnidash/internal/logging"

	_ "github.com/mattn/go-sqlite3" // registers "sqlite3" (cgo)
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // registers "sqlite" (pure Go)
)

// Store manages a catalog database.
type Store struct {
	db     *sql.DB
	dbPath string
	driver string
	logger *zap.Logger
}

// Open creates or opens the catalog database at path using driver
// (config.DriverSQLite or config.DriverSQLite3).
func Open(ctx context.Context, driver, path string) (*Store, error) {
	logger := logging.Get(logging.CategoryStore)

	dsn, err := dataSource(driver, path)
	if err != nil {
		return nil, err
	}

	// Ensure directory exists
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(4)

	s := &Store{db: db, dbPath: path, driver: driver, logger: logger}
	if err := s.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logger.Debug("opened catalog database", zap.String("path", path), zap.String("driver", driver))
	return s, nil
}

func dataSource(driver, path string) (string, error) {
	switch driver {
	case config.DriverSQLite:
		return path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", nil
	case config.DriverSQLite3:
		return path + "?_busy_timeout=5000&_journal_mode=WAL", nil
	default:
		return "", fmt.Errorf("unsupported catalog driver %q", driver)
	}
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.dbPath
}

// Driver returns the database/sql driver name in use.
func (s *Store) Driver() string {
	return s.driver
}
