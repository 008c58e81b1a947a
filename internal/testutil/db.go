package testutil

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdkit/internal/domain"
	"github.com/footprint-tools/cmdkit/internal/store/migrations"
)

// NewTestDB creates an in-memory SQLite database with migrations applied.
// The database is automatically closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "failed to open in-memory database")
	db.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = db.Close()
	})

	err = migrations.Run(db)
	require.NoError(t, err, "failed to run migrations")

	return db
}

// SeedEntries inserts entries into store, assigning start times one second
// apart from base when an entry has none.
func SeedEntries(t *testing.T, store domain.AuditStore, base time.Time, entries []domain.AuditEntry) {
	t.Helper()

	for i, e := range entries {
		if e.StartedAt.IsZero() {
			e.StartedAt = base.Add(time.Duration(i) * time.Second)
		}
		_, err := store.Insert(e)
		require.NoError(t, err, "failed to seed entry: %+v", e)
	}
}
