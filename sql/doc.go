// Package sql provides a bun-based PostgreSQL storage implementation of
// the jobs package's interfaces.
//
// # Overview
//
// The queue engine — schema, claiming, leasing, retry bookkeeping — lives
// in PostgreSQL as PL/pgSQL stored functions (see migrations/). This
// package is a thin client: Publisher, Consumer, Acker, Observer and
// Cleaner each call one stored function or view and scan its result
// into job.Job, via github.com/uptrace/bun over github.com/jackc/pgx/v5.
//
// # Schema
//
// Migrator applies the embedded migrations/*.up.sql files in ascending
// numeric order, tracked by the single-row jobs.migrations table:
//
//   - jobs.queue   — live jobs (queued, running)
//   - jobs.history — terminal jobs (success, failed), one row each
//   - jobs.running, jobs.expired, jobs.job_queue, jobs.all — operator views
//
// Migrate is idempotent and transactional; it does not support down
// migrations.
//
// # Concurrency
//
// Consume claims rows with a single UPDATE ... WHERE job_id IN (SELECT
// ... FOR UPDATE SKIP LOCKED) statement, so concurrent callers never
// block on each other and never double-claim a row.
//
// # Error classification
//
// classify maps pgx/Postgres errors to the sentinel errors in the jobs
// package: the stored functions' own SQLSTATEs JB001/JB002 to
// ErrInvalidAck/ErrNotFound, class-23 constraint violations to
// ErrConstraintViolation, and class-40/connection errors to
// ErrTransient.
package sql
