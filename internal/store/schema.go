package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SchemaVersion is recorded in PRAGMA user_version.
const SchemaVersion = 1

var schema = []string{
	`CREATE TABLE IF NOT EXISTS webinars (
		id INTEGER PRIMARY KEY,
		title TEXT NOT NULL,
		status TEXT NOT NULL,
		conducted INTEGER NOT NULL DEFAULT 0,
		postponed INTEGER NOT NULL DEFAULT 0,
		topic TEXT NOT NULL DEFAULT '',
		speakers INTEGER NOT NULL DEFAULT 0,
		held_on TEXT,
		position INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS mentorships (
		id INTEGER PRIMARY KEY,
		mentor TEXT NOT NULL,
		mentee TEXT NOT NULL,
		meetings INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL,
		topic TEXT NOT NULL DEFAULT '',
		postponed INTEGER NOT NULL DEFAULT 0,
		duration TEXT NOT NULL DEFAULT '',
		position INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS placements (
		id INTEGER PRIMARY KEY,
		alumni TEXT NOT NULL,
		company TEXT NOT NULL,
		status TEXT NOT NULL,
		package TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL DEFAULT '',
		placed_on TEXT,
		location TEXT NOT NULL DEFAULT '',
		position INTEGER NOT NULL
	)`,
}

// ErrSchemaTooNew is returned when the database was written by a newer
// schema than this build understands.
var ErrSchemaTooNew = errors.New("catalog database schema is newer than supported")

// initSchema creates the database schema.
func (s *Store) initSchema(ctx context.Context) error {
	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version > SchemaVersion {
		return fmt.Errorf("%w: %d > %d", ErrSchemaTooNew, version, SchemaVersion)
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		for _, stmt := range schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
		_, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", SchemaVersion))
		return err
	})
}

func (s *Store) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
