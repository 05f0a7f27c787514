// Package dbtest prepares Postgres tables for repository tests.
package dbtest

import (
	"context"
	"fmt"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib" // golang postgres driver
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// EnvDSN names the variable holding the test database DSN.
const EnvDSN = "TEST_PG_DSN"

// Connect opens the test database, recreates tables from the migration files and
// drops them again once the test is done. The test is skipped when EnvDSN is unset.
func Connect(tb testing.TB, tables []string, migrations ...string) *sqlx.DB {
	tb.Helper()

	dsn := os.Getenv(EnvDSN)
	if dsn == "" {
		tb.Skipf("%s is not set", EnvDSN)
	}

	rq := require.New(tb)
	ctx := context.Background()

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	rq.NoError(err)

	tb.Cleanup(func() {
		_ = DropTables(context.Background(), db, tables...)
		_ = db.Close()
	})

	rq.NoError(DropTables(ctx, db, tables...))
	rq.NoError(MigrateFromFile(ctx, db, migrations...))

	return db
}

// MigrateFromFile runs each file as one statement batch, in order.
func MigrateFromFile(ctx context.Context, db *sqlx.DB, fileNames ...string) error {
	for _, fileName := range fileNames {
		query, err := os.ReadFile(fileName)
		if err != nil {
			return fmt.Errorf("os.ReadFile: %w", err)
		}

		if _, err = db.ExecContext(ctx, string(query)); err != nil {
			return fmt.Errorf("db.ExecContext(%s): %w", fileName, err)
		}
	}

	return nil
}

func DropTables(ctx context.Context, db *sqlx.DB, tables ...string) error {
	for _, table := range tables {
		if _, err := db.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
			return fmt.Errorf("db.ExecContext(drop %s): %w", table, err)
		}
	}

	return nil
}
