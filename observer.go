package jobs

import (
	"context"

	"github.com/google/uuid"
	"github.com/vinissimus/jobs/job"
)

// Observer provides read-only access to jobs stored in the queue and its
// operator-facing views (job_queue, running, expired, all — spec §6.2).
//
// Observer does not modify job state and does not participate in leasing
// or lifecycle transitions. Returned Job values are snapshots; mutating
// them does not affect the underlying queue.
type Observer interface {

	// Get returns the job identified by id, searching both the live queue
	// and history (the "all" view).
	//
	// If no job with the given id exists, Get returns (nil, nil).
	Get(ctx context.Context, id uuid.UUID) (*job.Job, error)

	// ListQueued returns up to limit jobs currently awaiting consumption
	// (the job_queue view: status queued, scheduled_at null or past).
	// limit <= 0 means no limit.
	ListQueued(ctx context.Context, limit int) ([]*job.Job, error)

	// ListRunning returns up to limit jobs currently leased with a live
	// lease (the running view).
	ListRunning(ctx context.Context, limit int) ([]*job.Job, error)

	// ListExpired returns up to limit jobs currently leased whose lease
	// has expired (the expired view) — candidates for lazy reclamation.
	ListExpired(ctx context.Context, limit int) ([]*job.Job, error)

	// List returns up to limit jobs matching status across both the live
	// queue and history (the all view). If status is job.Unknown, no
	// status filter is applied. limit <= 0 means no limit.
	List(ctx context.Context, status job.Status, limit int) ([]*job.Job, error)
}
