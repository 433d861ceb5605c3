package repository_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iliyamo/theatre-data-processor/internal/database"
)

// setupTestDB opens an in-memory SQLite database with the authoritative
// schema from the database package.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err, "failed to open test db")
	require.NoError(t, database.EnsureSchema(context.Background(), db, database.DriverSQLite))

	t.Cleanup(func() {
		db.Close()
	})
	return db
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}
