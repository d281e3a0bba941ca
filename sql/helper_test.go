package sql_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"

	gsql "github.com/vinissimus/jobs/sql"
)

// newTestDB starts a throwaway PostgreSQL container, applies every
// migration and returns the migrated *bun.DB. The PL/pgSQL engine this
// package drives cannot run against anything but real PostgreSQL, so
// unlike the teacher's in-memory SQLite fixture, these tests require
// Docker.
func newTestDB(t *testing.T) *bun.DB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("jobs"),
		postgres.WithUsername("jobs"),
		postgres.WithPassword("jobs"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, container.Terminate(context.Background()))
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gsql.Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, db.Close()) })

	migrator := gsql.NewMigrator(db)
	_, err = migrator.Migrate(ctx)
	require.NoError(t, err)

	return db
}
