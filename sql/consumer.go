package sql

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/vinissimus/jobs/job"
)

// Consumer implements jobs.Consumer against the jobs.consume stored
// function overloads.
type Consumer struct {
	db *bun.DB
}

// NewConsumer creates a new SQL-backed Consumer.
func NewConsumer(db *bun.DB) *Consumer {
	return &Consumer{db: db}
}

// Consume leases up to n eligible jobs of any task.
func (c *Consumer) Consume(ctx context.Context, n int) ([]*job.Job, error) {
	if n <= 0 {
		return []*job.Job{}, nil
	}
	var models []jobModel
	if err := c.db.NewRaw("SELECT * FROM jobs.consume(?)", n).Scan(ctx, &models); err != nil {
		return nil, classify(err)
	}
	return toJobs(models)
}

// ConsumeTopic leases up to n eligible jobs whose task matches topic.
func (c *Consumer) ConsumeTopic(ctx context.Context, topic string, n int) ([]*job.Job, error) {
	if n <= 0 {
		return []*job.Job{}, nil
	}
	var models []jobModel
	if err := c.db.NewRaw("SELECT * FROM jobs.consume(?, ?)", topic, n).Scan(ctx, &models); err != nil {
		return nil, classify(err)
	}
	return toJobs(models)
}
