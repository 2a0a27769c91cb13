// Package databasetest opens throwaway migrated databases for tests.
package databasetest

import (
	"context"
	"testing"

	"github.com/rpupo63/travel-blog-backend/database"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// Open returns a Database backed by a fresh in-memory SQLite store with every
// table migrated. It is closed when the test ends.
func Open(t testing.TB) database.Database {
	t.Helper()

	gdb, err := database.Open(database.Options{
		Driver: database.DriverSQLite,
		DSN:    "file::memory:",
		Logger: zerolog.Nop(),
	})
	require.NoError(t, err)

	db := database.New(gdb)
	require.NoError(t, db.Migrate(context.Background()))
	t.Cleanup(func() { _ = db.Close() })
	return db
}
