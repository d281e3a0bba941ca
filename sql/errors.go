package sql

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vinissimus/jobs"
)

// SQLSTATEs raised by the stored functions in migrations, not assigned
// by PostgreSQL itself.
const (
	sqlstateInvalidAck = "JB001"
	sqlstateNotFound   = "JB002"
)

// classify maps a pgx/Postgres error to one of the sentinel errors in
// the jobs package. Errors that don't come from a recognized Postgres
// condition are returned unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case sqlstateInvalidAck:
			return jobs.ErrInvalidAck
		case sqlstateNotFound:
			return jobs.ErrNotFound
		}
		switch {
		case strings.HasPrefix(pgErr.Code, "23"):
			return jobs.ErrConstraintViolation
		case strings.HasPrefix(pgErr.Code, "40"):
			return jobs.ErrTransient
		}
		return err
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return jobs.ErrTransient
	}
	return err
}
