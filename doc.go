// Package jobs provides a durable, PostgreSQL-backed job queue with
// at-least-once delivery semantics and a lease-based visibility timeout.
//
// # Overview
//
// The queue engine itself — schema, claiming, leasing, retry bookkeeping —
// lives in PostgreSQL as a set of stored functions (package sql, applied by
// Migrator). This package defines the client-facing contracts over that
// engine (Publisher, Consumer, Acker, Observer, Cleaner) plus the
// reusable machinery built on top of them: Worker, CleanWorker, Registry
// and BackoffConfig.
//
// # Delivery Semantics
//
// jobs provides at-least-once processing guarantees. A job may be
// delivered more than once if a worker crashes before acking it or its
// lease expires before it completes. Task handlers registered in a
// Registry must therefore be idempotent.
//
// # Visibility Timeout (Lease Model)
//
// When a job is consumed, it transitions from Queued to Running and
// receives a lease (LeasedUntil) derived from the job's own Timeout,
// fixed at publish time. While the lease is valid, the job is not
// eligible for consumption by another caller.
//
// If the lease expires before Ack or Nack, the job becomes eligible
// again. Reclamation is lazy: it happens the next time a consumer looks
// for eligible work, and it never increments Retries — a timeout is an
// absence of evidence, not a reported failure. Worker never extends a
// lease once granted.
//
// # State Machine
//
//	Queued  -> Running             (Consume / ConsumeTopic)
//	Running -> Success             (Ack)
//	Running -> Queued              (Nack, retries < max_retries)
//	Running -> Failed              (Nack, retries >= max_retries)
//	Running -> Running             (lease expiry; re-leased by the next Consume)
//
// Success and Failed are terminal: both move the job from the live queue
// to history, and neither Ack nor Nack applies to a job in either state.
//
// # Retry Policy
//
// The engine's own retries/max_retries bookkeeping is authoritative for
// the queued-vs-failed decision on Nack (spec: the stored function
// decides, not the caller). BackoffConfig only computes the scheduled_at
// a Worker passes to Nack; it never decides whether a job is retried.
//
// # Worker
//
// Worker coordinates consuming, dispatching and finalizing jobs. It:
//
//   - periodically consumes eligible jobs from storage
//   - dispatches them to the handler registered in a Registry under the
//     job's Task name
//   - acks on success, nacks (with a computed scheduled_at) on failure
//   - supports graceful shutdown with timeout
//
// Worker does not guarantee exactly-once delivery.
//
// # Interfaces
//
// jobs defines the following primary interfaces, each implemented
// against the stored functions in package sql:
//
//	Publisher — enqueue jobs, singly or in bulk
//	Consumer  — lease eligible jobs
//	Acker     — finalize a leased job (success or failure)
//	Observer  — inspect job state and operator-facing views
//	Cleaner   — purge terminal jobs from history
//
// # Concurrency Model
//
// Worker uses a bounded internal queue and a fixed-size worker pool.
// Consuming and processing are decoupled to smooth load. Shutdown is
// graceful: in-flight handlers are allowed to finish, subject to a
// configurable timeout.
//
// # Storage Expectations
//
// The sql package assumes a PostgreSQL database migrated with Migrator.
// Atomicity of state transitions, concurrent-safe claiming and lease
// bookkeeping are guaranteed by the stored functions, not by the Go
// client.
package jobs
