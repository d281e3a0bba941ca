package jobs

import (
	"context"

	"github.com/vinissimus/jobs/job"
)

// Consumer defines the read-claim contract for leasing jobs from the queue.
//
// Consume and ConsumeTopic atomically transition up to n eligible jobs to
// Running and return them; a job whose lease already expired (visible
// through the expired view) is eligible again and is reclaimed ahead of
// fresh work, without incrementing its Retries — a timeout is an absence of
// evidence, not a failure (see Worker doc and spec §4.5).
//
// No two concurrent callers are ever handed the same job: claiming uses
// row-level locking with skip-locked semantics, so a caller is never
// blocked behind a peer's in-flight claim.
type Consumer interface {

	// Consume leases up to n eligible jobs of any task, ordered per the
	// engine's ordering rules (expired leases first, then priority desc,
	// then scheduled_at asc nulls first, then created_at asc, then job_id
	// asc as a deterministic tie-break).
	//
	// If n is <= 0 or no jobs are eligible, Consume returns an empty,
	// non-nil slice and a nil error.
	Consume(ctx context.Context, n int) ([]*job.Job, error)

	// ConsumeTopic behaves like Consume but restricts eligibility to jobs
	// whose Task matches the given SQL LIKE pattern (% as wildcard).
	ConsumeTopic(ctx context.Context, topic string, n int) ([]*job.Job, error)
}
