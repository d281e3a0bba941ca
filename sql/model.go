package sql

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/vinissimus/jobs/job"
)

// jobModel mirrors the row shape shared by jobs.queue, jobs.history and
// the jobs.all view. Raw query results are scanned directly into it
// regardless of which relation produced them; columns absent from a
// given relation (e.g. leased_until on a history row) simply scan as
// their zero value.
type jobModel struct {
	bun.BaseModel `bun:"table:jobs.all"`

	JobID uuid.UUID `bun:"job_id,pk,type:uuid"`
	Task  string    `bun:"task"`
	Body  []byte    `bun:"body,type:jsonb"`

	CreatedAt   time.Time  `bun:"created_at"`
	ScheduledAt *time.Time `bun:"scheduled_at"`
	Timeout     int        `bun:"timeout"`

	Priority   int `bun:"priority"`
	MaxRetries int `bun:"max_retries"`
	Retries    int `bun:"retries"`

	Status      string     `bun:"status"`
	LastError   *string    `bun:"last_error"`
	Result      []byte     `bun:"result,type:jsonb"`
	LeasedUntil *time.Time `bun:"leased_until"`
}

func (jm *jobModel) toJob() (*job.Job, error) {
	status, err := job.ParseStatus(jm.Status)
	if err != nil {
		return nil, err
	}
	return &job.Job{
		JobID:       jm.JobID,
		Task:        jm.Task,
		Body:        jm.Body,
		CreatedAt:   jm.CreatedAt,
		ScheduledAt: jm.ScheduledAt,
		Timeout:     time.Duration(jm.Timeout) * time.Second,
		Priority:    jm.Priority,
		MaxRetries:  jm.MaxRetries,
		Retries:     jm.Retries,
		Status:      status,
		LastError:   jm.LastError,
		Result:      jm.Result,
		LeasedUntil: jm.LeasedUntil,
	}, nil
}

func toJobs(models []jobModel) ([]*job.Job, error) {
	ret := make([]*job.Job, 0, len(models))
	for i := range models {
		jb, err := models[i].toJob()
		if err != nil {
			return nil, err
		}
		ret = append(ret, jb)
	}
	return ret, nil
}
