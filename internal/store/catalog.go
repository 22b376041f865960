package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"alumnidash/internal/catalog"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Save replaces the stored catalog with c in a single transaction.
// Collection order is preserved.
func (s *Store) Save(ctx context.Context, c *catalog.Catalog) error {
	if c == nil {
		c = &catalog.Catalog{}
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		for _, table := range []string{"webinars", "mentorships", "placements"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}

		for i, w := range c.Webinars {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO webinars (id, title, status, conducted, postponed, topic, speakers, held_on, position)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				int(w.ID), w.Title, string(w.Status), w.ConductedCount, w.PostponedCount, w.Topic, w.SpeakerCount, w.Date, i,
			); err != nil {
				return fmt.Errorf("failed to insert webinar %d: %w", w.ID, err)
			}
		}
		for i, m := range c.Mentorships {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO mentorships (id, mentor, mentee, meetings, status, topic, postponed, duration, position)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				int(m.ID), m.MentorName, m.MenteeName, m.MeetingCount, string(m.Status), m.Topic, m.PostponedCount, m.DurationLabel, i,
			); err != nil {
				return fmt.Errorf("failed to insert mentorship %d: %w", m.ID, err)
			}
		}
		for i, p := range c.Placements {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO placements (id, alumni, company, status, package, role, placed_on, location, position)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				int(p.ID), p.AlumniName, p.Company, string(p.Status), p.PackageLabel, p.Position, p.Date, p.Location, i,
			); err != nil {
				return fmt.Errorf("failed to insert placement %d: %w", p.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("catalog saved",
		zap.Int("webinars", len(c.Webinars)),
		zap.Int("mentorships", len(c.Mentorships)),
		zap.Int("placements", len(c.Placements)),
	)
	return nil
}

// Load reads the whole catalog. The three collections are queried in
// parallel.
func (s *Store) Load(ctx context.Context) (*catalog.Catalog, error) {
	start := time.Now()
	c := &catalog.Catalog{}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		c.Webinars, err = s.loadWebinars(egCtx)
		return err
	})
	eg.Go(func() (err error) {
		c.Mentorships, err = s.loadMentorships(egCtx)
		return err
	})
	eg.Go(func() (err error) {
		c.Placements, err = s.loadPlacements(egCtx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	s.logger.Debug("catalog loaded",
		zap.Int("webinars", len(c.Webinars)),
		zap.Int("mentorships", len(c.Mentorships)),
		zap.Int("placements", len(c.Placements)),
		zap.Duration("took", time.Since(start)),
	)
	return c, nil
}

func (s *Store) loadWebinars(ctx context.Context) ([]catalog.WebinarRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, status, conducted, postponed, topic, speakers, held_on
		 FROM webinars ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query webinars: %w", err)
	}
	defer rows.Close()

	var out []catalog.WebinarRecord
	for rows.Next() {
		var w catalog.WebinarRecord
		if err := rows.Scan(&w.ID, &w.Title, &w.Status, &w.ConductedCount, &w.PostponedCount, &w.Topic, &w.SpeakerCount, &w.Date); err != nil {
			return nil, fmt.Errorf("failed to scan webinar: %w", err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (s *Store) loadMentorships(ctx context.Context) ([]catalog.MentorshipRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, mentor, mentee, meetings, status, topic, postponed, duration
		 FROM mentorships ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query mentorships: %w", err)
	}
	defer rows.Close()

	var out []catalog.MentorshipRecord
	for rows.Next() {
		var m catalog.MentorshipRecord
		if err := rows.Scan(&m.ID, &m.MentorName, &m.MenteeName, &m.MeetingCount, &m.Status, &m.Topic, &m.PostponedCount, &m.DurationLabel); err != nil {
			return nil, fmt.Errorf("failed to scan mentorship: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *Store) loadPlacements(ctx context.Context) ([]catalog.PlacementRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, alumni, company, status, package, role, placed_on, location
		 FROM placements ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query placements: %w", err)
	}
	defer rows.Close()

	var out []catalog.PlacementRecord
	for rows.Next() {
		var p catalog.PlacementRecord
		if err := rows.Scan(&p.ID, &p.AlumniName, &p.Company, &p.Status, &p.PackageLabel, &p.Position, &p.Date, &p.Location); err != nil {
			return nil, fmt.Errorf("failed to scan placement: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// LoadFile opens the database at path, loads the catalog and closes it.
func LoadFile(ctx context.Context, driver, path string) (*catalog.Catalog, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("catalog database: %w", err)
	}
	s, err := Open(ctx, driver, path)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return s.Load(ctx)
}
