package sql

import (
	"context"
	"encoding/json"
	"time"

	"github.com/uptrace/bun"

	"github.com/vinissimus/jobs"
	"github.com/vinissimus/jobs/job"
)

const defaultTimeout = 60 * time.Second

// Publisher implements jobs.Publisher against the jobs.publish and
// jobs.publish_bulk stored functions.
type Publisher struct {
	db *bun.DB
}

// NewPublisher creates a new SQL-backed Publisher.
//
// The provided *bun.DB must already be migrated (see Migrator).
func NewPublisher(db *bun.DB) *Publisher {
	return &Publisher{db: db}
}

// Publish inserts a single job via jobs.publish and returns the row the
// stored function produced.
func (p *Publisher) Publish(ctx context.Context, task string, body []byte, opts *jobs.PublishOptions) (*job.Job, error) {
	timeout, priority, maxRetries, scheduledAt := resolvePublishOptions(opts)

	var model jobModel
	err := p.db.NewRaw(
		"SELECT * FROM jobs.publish(?, ?, ?, ?, ?, ?)",
		task, json.RawMessage(body), scheduledAt, int(timeout.Seconds()), priority, maxRetries,
	).Scan(ctx, &model)
	if err != nil {
		return nil, classify(err)
	}
	return model.toJob()
}

// bulkJobRow is the wire shape jobs.publish_bulk expects inside its
// jsonb array argument. MaxRetries is a pointer so a nil value marshals
// to jsonb null, letting jobs.publish_bulk's own
// COALESCE(input.max_retries, 3) apply the default — the same nil-means-
// unset contract jobs.BulkJob.MaxRetries exposes to callers.
type bulkJobRow struct {
	Task        string          `json:"task"`
	Body        json.RawMessage `json:"body"`
	ScheduledAt *time.Time      `json:"scheduled_at"`
	Timeout     int             `json:"timeout"`
	Priority    int             `json:"priority"`
	MaxRetries  *int            `json:"max_retries"`
}

// PublishBulk inserts many jobs in a single round trip via
// jobs.publish_bulk. Returned jobs preserve the input order.
func (p *Publisher) PublishBulk(ctx context.Context, bulk []jobs.BulkJob) ([]*job.Job, error) {
	if len(bulk) == 0 {
		return []*job.Job{}, nil
	}
	rows := make([]bulkJobRow, len(bulk))
	for i, b := range bulk {
		timeout := b.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		rows[i] = bulkJobRow{
			Task:        b.Task,
			Body:        b.Body,
			ScheduledAt: b.ScheduledAt,
			Timeout:     int(timeout.Seconds()),
			Priority:    b.Priority,
			MaxRetries:  b.MaxRetries,
		}
	}
	items, err := json.Marshal(rows)
	if err != nil {
		return nil, err
	}

	var models []jobModel
	err = p.db.NewRaw("SELECT * FROM jobs.publish_bulk(?)", items).Scan(ctx, &models)
	if err != nil {
		return nil, classify(err)
	}
	return toJobs(models)
}

// resolvePublishOptions fills in client-side defaults for timeout (a
// non-positive opts.Timeout selects 60s) and priority, and passes
// maxRetries and scheduledAt through as-is: jobs.publish already
// applies COALESCE(p_max_retries, 3), so a nil opts.MaxRetries reaches
// the default exactly the way a nil opts.ScheduledAt means "immediately
// eligible" — and a non-nil pointer to 0 is preserved rather than
// silently promoted to the default.
func resolvePublishOptions(opts *jobs.PublishOptions) (timeout time.Duration, priority int, maxRetries *int, scheduledAt *time.Time) {
	timeout = defaultTimeout
	if opts == nil {
		return
	}
	if opts.Timeout > 0 {
		timeout = opts.Timeout
	}
	priority = opts.Priority
	maxRetries = opts.MaxRetries
	scheduledAt = opts.ScheduledAt
	return
}
