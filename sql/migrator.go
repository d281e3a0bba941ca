package sql

import (
	"context"
	"embed"
	"errors"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun"
)

//go:embed migrations/*.up.sql
var migrationFiles embed.FS

// Migrator applies the NNNN_description.up.sql files embedded in
// migrations/ to a PostgreSQL database, tracking the highest applied
// version in the single-row jobs.migrations table.
//
// Ported in spirit from the original Python migration runner: strictly
// ascending version order, applied inside one transaction, idempotent
// on re-run.
type Migrator struct {
	db *bun.DB
}

// NewMigrator creates a Migrator for db.
func NewMigrator(db *bun.DB) *Migrator {
	return &Migrator{db: db}
}

type migration struct {
	version int
	name    string
	sql     string
}

func loadMigrations() ([]migration, error) {
	entries, err := migrationFiles.ReadDir("migrations")
	if err != nil {
		return nil, err
	}
	migrations := make([]migration, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		version, err := parseVersion(name)
		if err != nil {
			return nil, err
		}
		data, err := migrationFiles.ReadFile(path.Join("migrations", name))
		if err != nil {
			return nil, err
		}
		migrations = append(migrations, migration{version: version, name: name, sql: string(data)})
	}
	sort.Slice(migrations, func(i, j int) bool { return migrations[i].version < migrations[j].version })
	return migrations, nil
}

func parseVersion(name string) (int, error) {
	prefix, _, ok := strings.Cut(name, "_")
	if !ok {
		return 0, errors.New("sql: malformed migration filename " + name)
	}
	return strconv.Atoi(prefix)
}

const sqlstateUndefinedTable = "42P01"

func (m *Migrator) currentVersion(ctx context.Context, tx bun.Tx) (int, error) {
	// A failed statement aborts the whole transaction, so the probe runs
	// under a savepoint that is rolled back when the table does not exist.
	if _, err := tx.ExecContext(ctx, "SAVEPOINT jobs_migrations_probe"); err != nil {
		return 0, err
	}
	var version int
	err := tx.NewRaw("SELECT migration FROM jobs.migrations").Scan(ctx, &version)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == sqlstateUndefinedTable {
			if _, rbErr := tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT jobs_migrations_probe"); rbErr != nil {
				return 0, rbErr
			}
			return 0, nil
		}
		return 0, err
	}
	return version, nil
}

// Migrate applies all migrations newer than the currently recorded
// version, in one transaction, and returns how many were applied.
//
// Migrate is idempotent: calling it again after a successful run applies
// zero migrations.
func (m *Migrator) Migrate(ctx context.Context) (int, error) {
	migrations, err := loadMigrations()
	if err != nil {
		return 0, err
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	current, err := m.currentVersion(ctx, tx)
	if err != nil {
		_ = tx.Rollback()
		return 0, err
	}

	applied := 0
	latest := current
	for _, mig := range migrations {
		if mig.version <= current {
			continue
		}
		if _, err := tx.ExecContext(ctx, mig.sql); err != nil {
			_ = tx.Rollback()
			return 0, errors.New("sql: applying " + mig.name + ": " + err.Error())
		}
		latest = mig.version
		applied++
	}

	if applied > 0 {
		if _, err := tx.NewRaw("UPDATE jobs.migrations SET migration = ?", latest).Exec(ctx); err != nil {
			_ = tx.Rollback()
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return applied, nil
}

// MustMigrate behaves like Migrate but panics if migration fails.
func (m *Migrator) MustMigrate(ctx context.Context) int {
	applied, err := m.Migrate(ctx)
	if err != nil {
		panic(err)
	}
	return applied
}
