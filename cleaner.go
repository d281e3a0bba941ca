package jobs

import (
	"context"
	"time"
)

// Cleaner provides a mechanism for permanently removing terminal jobs from
// jobs.history.
//
// Cleaner is intended for retention management. Since only terminal jobs
// ever reach history — ack and nack move a row there only once it is
// Success or Failed — Clean never touches a live (queued/running) job and
// cannot race with Consume/Ack/Nack.
type Cleaner interface {

	// Clean deletes history rows with completed_at <= before and returns
	// the number of rows removed. If before is nil, no time-based
	// filtering is applied and all history rows are removed.
	Clean(ctx context.Context, before *time.Time) (int64, error)
}
