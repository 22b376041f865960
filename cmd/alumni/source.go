package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"alumnidash/internal/catalog"
	"alumnidash/internal/config"
	"alumnidash/internal/logging"
	"alumnidash/internal/store"

	"go.uber.org/zap"
)

// isYAML reports whether path names a YAML catalog rather than a database.
func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// loadCatalog reads the configured catalog source and validates it.
func loadCatalog(ctx context.Context, c *config.Config) (*catalog.Catalog, error) {
	start := time.Now()
	src := c.Catalog.Source

	var (
		cat  *catalog.Catalog
		kind string
		err  error
	)
	switch {
	case src == "":
		kind = "builtin"
		cat = catalog.Default()
	case isYAML(src):
		kind = "yaml"
		cat, err = catalog.LoadYAML(src)
	default:
		kind = c.Catalog.Driver
		ctx, cancel := context.WithTimeout(ctx, c.GetLoadTimeout())
		defer cancel()
		cat, err = store.LoadFile(ctx, c.Catalog.Driver, src)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", src, err)
	}
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", src, err)
	}

	logging.Catalog("catalog loaded",
		zap.String("source", src),
		zap.String("kind", kind),
		zap.Int("webinars", cat.Len(catalog.Webinar)),
		zap.Int("mentorships", cat.Len(catalog.Mentorship)),
		zap.Int("placements", cat.Len(catalog.Placement)),
		zap.Duration("took", time.Since(start)),
	)
	return cat, nil
}
