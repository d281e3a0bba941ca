package job

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Job represents a unit of deferred work managed by the queue storage.
//
// JobID identifies the job for all time, across both the live queue and
// history. Task is an opaque string interpreted by workers and used by the
// engine only for topic (LIKE) matching. Body is an opaque JSON payload.
//
// CreatedAt records insertion time. ScheduledAt is the earliest wall-clock
// time at which the job becomes eligible for consumption; nil means
// immediately eligible.
//
// Timeout is the lease duration: once consumed, the job is owned by a
// consumer until LeasedUntil, after which it is eligible for reclamation.
// Priority orders eligible jobs, higher values first.
// MaxRetries bounds how many times nack may requeue the job before it is
// marked Failed; Retries counts nacks so far.
//
// Status reflects the current lifecycle state (see Status). LastError holds
// the most recent failure message, if any. Result holds the opaque payload
// set by ack, if any. LeasedUntil is nil unless Status is Running.
//
// Job values are snapshots of storage state returned by Publish/Consume/
// Ack/Get. Mutating them does not affect the underlying queue; all
// transitions happen through the stored operations in package sql.
type Job struct {
	JobID uuid.UUID
	Task  string
	Body  json.RawMessage

	CreatedAt   time.Time
	ScheduledAt *time.Time
	Timeout     time.Duration

	Priority   int
	MaxRetries int
	Retries    int

	Status      Status
	LastError   *string
	Result      json.RawMessage
	LeasedUntil *time.Time
}
