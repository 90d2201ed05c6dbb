// Package dbtest opens a migrated PostgreSQL database for integration tests.
//
// The tests run only when MEMBERDIR_TEST_DATABASE_URL points at a database
// they may wipe; otherwise they are skipped.
package dbtest

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/member-directory/internal/database"
)

// EnvDatabaseURL names the connection string of the disposable database.
const EnvDatabaseURL = "MEMBERDIR_TEST_DATABASE_URL"

// NewExecutor migrates the database to the latest version, empties every
// table and returns an executor over a fresh pool. The pool is closed when
// the test ends.
func NewExecutor(t testing.TB) (*database.Executor, *pgxpool.Pool) {
	t.Helper()

	url := os.Getenv(EnvDatabaseURL)
	if url == "" {
		t.Skip("PostgreSQL not available (set " + EnvDatabaseURL + ")")
	}

	ctx := context.Background()
	logger := zerolog.Nop()

	require.NoError(t, database.MigrateURL(ctx, &logger, url, -1))

	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE session, member_has_network, member_has_category, network, category, member RESTART IDENTITY`)
	require.NoError(t, err)

	return database.NewExecutor(pool, &logger), pool
}

// Count runs a SELECT count(*) query and returns the result.
func Count(t testing.TB, pool *pgxpool.Pool, query string, args ...any) int {
	t.Helper()

	var n int
	require.NoError(t, pool.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}
