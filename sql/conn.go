package sql

import (
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
)

// Open connects to the PostgreSQL database identified by dsn and returns
// a *bun.DB wired with the pgx driver and Postgres dialect.
//
// Open does not run migrations; call a Migrator's Migrate before using
// the returned connection with Publisher, Consumer, Acker, Observer or
// Cleaner.
func Open(dsn string) (*bun.DB, error) {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	return bun.NewDB(sqlDB, pgdialect.New()), nil
}
