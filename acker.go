package jobs

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vinissimus/jobs/job"
)

// Acker defines the finalization contract for a leased job.
//
// Both methods require that the job is currently Running with a live
// lease (LeasedUntil > now); any other state raises ErrInvalidAck. Once a
// job reaches a terminal state (Success or Failed) no further Ack/Nack
// call succeeds, which makes a lost ack (worker crashed mid-task)
// indistinguishable from a double-ack: both surface as ErrInvalidAck and
// the job is simply redelivered once its lease expires. This is the
// cornerstone of the engine's at-least-once guarantee.
type Acker interface {

	// Ack marks a job as successfully completed, attaching the optional
	// opaque result payload, and moves it to history.
	//
	// Ack returns ErrInvalidAck if the job is not Running with a live
	// lease.
	Ack(ctx context.Context, id uuid.UUID, result []byte) (*job.Job, error)

	// Nack reports failure. If the job's retries would exceed its
	// max_retries, the engine marks it Failed and moves it to history
	// regardless of scheduledAt. Otherwise the job returns to Queued with
	// retries incremented and becomes eligible at scheduledAt (immediately
	// if nil) — the caller owns the backoff policy; see BackoffConfig.
	//
	// Nack returns ErrInvalidAck if the job is not Running with a live
	// lease.
	Nack(ctx context.Context, id uuid.UUID, errMsg string, scheduledAt *time.Time) error
}
