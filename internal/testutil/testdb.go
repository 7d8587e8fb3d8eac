package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/alexanderramin/herdsync/internal/db"
	"github.com/stretchr/testify/require"
)

// PostgresDSNEnv names the variable that enables postgres-backed tests.
const PostgresDSNEnv = "HERDSYNC_TEST_POSTGRES_DSN"

// NewTestDB returns a migrated in-memory sqlite database, closed with the test.
func NewTestDB(t testing.TB) *db.Database {
	t.Helper()
	return open(t, db.Options{Driver: db.DriverSQLite, Path: ":memory:"})
}

// NewPostgresTestDB opens HERDSYNC_TEST_POSTGRES_DSN and empties every
// herdsync table. Without the variable the test is skipped.
func NewPostgresTestDB(t testing.TB) *db.Database {
	t.Helper()
	dsn, ok := os.LookupEnv(PostgresDSNEnv)
	if !ok || dsn == "" {
		t.Skipf("%s not set", PostgresDSNEnv)
	}
	database := open(t, db.Options{Driver: db.DriverPostgres, DSN: dsn})
	_, err := database.SQL.Exec(`TRUNCATE reminders, sync_steps, sync_methods, cows CASCADE`)
	require.NoError(t, err, "truncate herdsync tables")
	return database
}

func open(t testing.TB, opts db.Options) *db.Database {
	t.Helper()
	database, err := db.Open(context.Background(), opts)
	require.NoError(t, err, "open test database")
	t.Cleanup(func() { _ = database.Close() })
	return database
}

// NewTestUoW wraps database in the production unit of work.
func NewTestUoW(database *db.Database) db.UnitOfWork {
	return db.NewUnitOfWork(database)
}
