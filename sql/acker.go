package sql

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/vinissimus/jobs/job"
)

// Acker implements jobs.Acker against the jobs.ack and jobs.nack stored
// functions.
type Acker struct {
	db *bun.DB
}

// NewAcker creates a new SQL-backed Acker.
func NewAcker(db *bun.DB) *Acker {
	return &Acker{db: db}
}

// Ack finalizes id as successful, attaching result, via jobs.ack.
func (a *Acker) Ack(ctx context.Context, id uuid.UUID, result []byte) (*job.Job, error) {
	var model jobModel
	err := a.db.NewRaw(
		"SELECT job_id, task, body, created_at, scheduled_at, timeout, priority, max_retries, retries, status, last_error, result FROM jobs.ack(?, ?)",
		id, json.RawMessage(result),
	).Scan(ctx, &model)
	if err != nil {
		return nil, classify(err)
	}
	return model.toJob()
}

// Nack reports failure of id via jobs.nack. The engine, not the caller,
// decides whether the job is retried or moved to Failed.
func (a *Acker) Nack(ctx context.Context, id uuid.UUID, errMsg string, scheduledAt *time.Time) error {
	_, err := a.db.NewRaw("SELECT jobs.nack(?, ?, ?)", id, errMsg, scheduledAt).Exec(ctx)
	if err != nil {
		return classify(err)
	}
	return nil
}
