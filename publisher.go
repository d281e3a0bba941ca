package jobs

import (
	"context"
	"time"

	"github.com/vinissimus/jobs/job"
)

// PublishOptions controls the optional fields of a published job. The zero
// value selects the engine's defaults: immediately eligible, 60s timeout,
// priority 0, 3 max retries.
//
// MaxRetries is a pointer, not a plain int, because 0 is a distinct,
// spec-legal value (fail on the first nack, no retries) and must not be
// indistinguishable from "unset" the way a bare zero value would be. A
// nil MaxRetries selects the engine's default of 3.
type PublishOptions struct {
	ScheduledAt *time.Time
	Timeout     time.Duration
	Priority    int
	MaxRetries  *int
}

// BulkJob is one entry of a PublishBulk call: the same fields a single
// Publish accepts, bundled together since there is no single active job to
// attach them to beforehand.
//
// MaxRetries is a pointer for the same reason as PublishOptions.MaxRetries:
// a nil value selects the engine's default, while a pointer to 0 requests
// no retries at all.
type BulkJob struct {
	Task        string
	Body        []byte
	ScheduledAt *time.Time
	Timeout     time.Duration
	Priority    int
	MaxRetries  *int
}

// Publisher defines the write-side entry point of the queue.
//
// Publish and PublishBulk persist jobs durably before returning nil/a
// result; a non-nil error means no job was created. Implementations must
// not mutate their inputs after returning.
type Publisher interface {

	// Publish enqueues a single job for future consumption.
	//
	// task must be non-empty; an empty task or a negative MaxRetries in
	// opts yields ErrConstraintViolation. A Timeout <= 0 in opts selects
	// the default. body is an opaque JSON payload and may be nil.
	//
	// If opts is nil, the engine's defaults apply (see PublishOptions).
	//
	// Publish returns the full inserted row, including the assigned
	// JobID and CreatedAt.
	Publish(ctx context.Context, task string, body []byte, opts *PublishOptions) (*job.Job, error)

	// PublishBulk enqueues many jobs atomically: either every job is
	// committed or none are.
	//
	// The returned jobs are in the same order as the input slice.
	PublishBulk(ctx context.Context, jobs []BulkJob) ([]*job.Job, error)
}
