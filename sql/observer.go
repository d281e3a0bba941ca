package sql

import (
	"context"
	gosql "database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/vinissimus/jobs/job"
)

// Observer implements jobs.Observer against the jobs.all, jobs.job_queue,
// jobs.running and jobs.expired views.
type Observer struct {
	db *bun.DB
}

// NewObserver creates a new SQL-backed Observer.
func NewObserver(db *bun.DB) *Observer {
	return &Observer{db: db}
}

// Get retrieves a job by id from jobs.all (queue union history).
func (o *Observer) Get(ctx context.Context, id uuid.UUID) (*job.Job, error) {
	var model jobModel
	err := o.db.NewRaw("SELECT * FROM jobs.all WHERE job_id = ?", id).Scan(ctx, &model)
	if err != nil {
		if errors.Is(err, gosql.ErrNoRows) {
			return nil, nil
		}
		return nil, classify(err)
	}
	return model.toJob()
}

func (o *Observer) listView(ctx context.Context, view string, limit int) ([]*job.Job, error) {
	query := "SELECT * FROM " + view
	var models []jobModel
	var err error
	if limit > 0 {
		err = o.db.NewRaw(query+" LIMIT ?", limit).Scan(ctx, &models)
	} else {
		err = o.db.NewRaw(query).Scan(ctx, &models)
	}
	if err != nil {
		return nil, classify(err)
	}
	return toJobs(models)
}

// ListQueued returns up to limit jobs from jobs.job_queue.
func (o *Observer) ListQueued(ctx context.Context, limit int) ([]*job.Job, error) {
	return o.listView(ctx, "jobs.job_queue", limit)
}

// ListRunning returns up to limit jobs from jobs.running.
func (o *Observer) ListRunning(ctx context.Context, limit int) ([]*job.Job, error) {
	return o.listView(ctx, "jobs.running", limit)
}

// ListExpired returns up to limit jobs from jobs.expired.
func (o *Observer) ListExpired(ctx context.Context, limit int) ([]*job.Job, error) {
	return o.listView(ctx, "jobs.expired", limit)
}

// List returns up to limit jobs from jobs.all, optionally filtered by
// status. job.Unknown applies no filter.
func (o *Observer) List(ctx context.Context, status job.Status, limit int) ([]*job.Job, error) {
	query := o.db.NewSelect().Model((*jobModel)(nil)).ModelTableExpr("jobs.all AS job_model")
	if status != job.Unknown {
		query = query.Where("status = ?", status.String())
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	var models []jobModel
	if err := query.Scan(ctx, &models); err != nil {
		return nil, classify(err)
	}
	return toJobs(models)
}
