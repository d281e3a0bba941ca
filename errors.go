package jobs

import "errors"

var (
	// ErrInvalidAck is returned by Ack and Nack when the referenced job is
	// not currently Running with a live lease: it does not exist in the
	// live queue, its status is not Running, or its lease has already
	// expired. This includes both a lost lease (another consumer reclaimed
	// the job after the caller's lease expired) and a double ack/nack on a
	// job that already reached a terminal state.
	//
	// ErrInvalidAck is never auto-recovered: the lease simply expires and
	// the job is redelivered to whoever next calls Consume.
	ErrInvalidAck = errors.New("jobs: invalid ack")

	// ErrNotFound is returned when an operation references a job_id that
	// does not exist anywhere — neither in the live queue nor in history.
	// It is distinct from ErrInvalidAck, which covers a job_id that exists
	// but is not a valid ack/nack target.
	ErrNotFound = errors.New("jobs: job not found")

	// ErrConstraintViolation is returned by Publish/PublishBulk when the
	// supplied fields violate a schema constraint, such as an empty task
	// or a negative max_retries. This signals a caller-side bug; it is
	// never transient.
	ErrConstraintViolation = errors.New("jobs: constraint violation")

	// ErrTransient wraps a connection drop, deadlock, or serialization
	// failure reported by Postgres. The engine itself simply rolls back;
	// retrying the same call is safe and is the caller's responsibility.
	ErrTransient = errors.New("jobs: transient storage error")
)
