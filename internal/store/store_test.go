package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"alumnidash/internal/catalog"
	"alumnidash/internal/config"
	"alumnidash/internal/status"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("database/sql.(*DB).connectionOpener"),
	)
}

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), config.DriverSQLite, filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenCreatesSchema(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	var version int
	require.NoError(t, s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version))
	assert.Equal(t, SchemaVersion, version)

	c, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Zero(t, c.Len(catalog.Webinar))
	assert.Zero(t, c.Len(catalog.Mentorship))
	assert.Zero(t, c.Len(catalog.Placement))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	want := catalog.Default()

	require.NoError(t, s.Save(ctx, want))
	got, err := s.Load(ctx)
	require.NoError(t, err)

	if diff := cmp.Diff(want, got, cmp.AllowUnexported(catalog.Date{})); diff != "" {
		t.Errorf("catalog mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveReplacesPreviousCatalog(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, catalog.Default()))
	small := &catalog.Catalog{
		Placements: []catalog.PlacementRecord{
			{ID: 9, AlumniName: "Ada", Company: "Acme", Status: status.Offered, PackageLabel: "12 LPA"},
		},
	}
	require.NoError(t, s.Save(ctx, small))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.Webinars)
	assert.Empty(t, got.Mentorships)
	require.Len(t, got.Placements, 1)
	assert.Equal(t, "Ada", got.Placements[0].AlumniName)
	assert.True(t, got.Placements[0].Date.IsZero())
}

func TestSaveRejectsInvalidCatalog(t *testing.T) {
	s := openTemp(t)
	bad := &catalog.Catalog{
		Webinars: []catalog.WebinarRecord{
			{ID: 1, Title: "a", Status: status.Approved},
			{ID: 1, Title: "b", Status: status.Approved},
		},
	}
	assert.Error(t, s.Save(context.Background(), bad))
}

func TestLoadFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "seeded.db")

	s, err := Open(ctx, config.DriverSQLite, path)
	require.NoError(t, err)
	assert.Equal(t, path, s.Path())
	assert.Equal(t, config.DriverSQLite, s.Driver())
	require.NoError(t, s.Save(ctx, catalog.Default()))
	require.NoError(t, s.Close())

	c, err := LoadFile(ctx, config.DriverSQLite, path)
	require.NoError(t, err)
	assert.Equal(t, catalog.Default().Len(catalog.Mentorship), c.Len(catalog.Mentorship))

	_, err = LoadFile(ctx, config.DriverSQLite, filepath.Join(t.TempDir(), "missing.db"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), "postgres", filepath.Join(t.TempDir(), "x.db"))
	assert.Error(t, err)
}

func TestOpenRejectsNewerSchema(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "future.db")

	s, err := Open(ctx, config.DriverSQLite, path)
	require.NoError(t, err)
	_, err = s.db.ExecContext(ctx, "PRAGMA user_version = 99")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = Open(ctx, config.DriverSQLite, path)
	assert.ErrorIs(t, err, ErrSchemaTooNew)
}

func TestLoadHonorsCancelledContext(t *testing.T) {
	s := openTemp(t)
	require.NoError(t, s.Save(context.Background(), catalog.Default()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Load(ctx)
	assert.Error(t, err)
}
