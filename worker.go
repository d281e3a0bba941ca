package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/vinissimus/jobs/internal"
	"github.com/vinissimus/jobs/job"
)

// WorkerConfig defines runtime behavior of a Worker.
//
// Concurrency specifies the number of concurrently running task handlers.
//
// Queue specifies the internal buffering capacity between consuming jobs
// from storage and dispatching them to handlers.
//
// BatchSize defines the maximum number of jobs fetched in a single Consume.
//
// PullInterval defines how often the worker polls storage for new jobs.
//
// Topic, if non-empty, restricts consumption to task names matching this
// SQL LIKE pattern (see ConsumeTopic). A Worker with an empty Topic
// consumes jobs of any task.
//
// Backoff defines the retry policy applied when a handler returns an
// error; it is consulted to compute the scheduled_at passed to Nack.
type WorkerConfig struct {
	Concurrency  int
	Queue        int
	BatchSize    int
	PullInterval time.Duration
	Topic        string
	Backoff      BackoffConfig
}

// Worker coordinates consuming, dispatching and finalizing jobs.
//
// Worker implements an at-least-once processing model:
//
//  1. Periodically Consume up to BatchSize eligible jobs from storage.
//  2. Dispatch each to the handler registered under its Task name.
//  3. On success, Ack the job with the handler's result.
//  4. On failure, Nack the job with a scheduled_at computed from Backoff;
//     the engine itself decides whether the job is retried or marked
//     Failed (spec §4.4), so Worker never branches on retries remaining.
//
// A job's lease is never extended: its visibility timeout is fixed at
// publish time (Job.Timeout) and reclamation of a lapsed lease is lazy
// (spec §4.5). A handler that overruns its job's timeout risks the job
// being redelivered to another worker while it is still running; handlers
// must be idempotent regardless.
//
// Worker does not guarantee exactly-once delivery.
//
// Worker has a strict lifecycle:
//   - Start may only be called once.
//   - Stop gracefully shuts down the pull and worker goroutines.
//   - Stop waits until all in-flight handlers finish or the timeout expires.
type Worker struct {
	lcBase
	consumer  Consumer
	acker     Acker
	registry  *Registry
	pullTask  internal.TimerTask
	pool      *internal.WorkerPool[*job.Job]
	log       *slog.Logger
	batchSize int
	interval  time.Duration
	topic     string
	backoff   backoffCounter
}

// NewWorker creates a new Worker instance.
//
// The worker is not started automatically. Call Start to begin processing.
//
// consumer and acker define storage semantics; registry resolves a job's
// Task to the handler that processes it.
func NewWorker(consumer Consumer, acker Acker, registry *Registry, config *WorkerConfig, log *slog.Logger) *Worker {
	return &Worker{
		consumer:  consumer,
		acker:     acker,
		registry:  registry,
		pool:      internal.NewWorkerPool[*job.Job](config.Concurrency, config.Queue, log),
		log:       log,
		batchSize: config.BatchSize,
		interval:  config.PullInterval,
		topic:     config.Topic,
		backoff:   backoffCounter{config.Backoff},
	}
}

func (w *Worker) pull(ctx context.Context) {
	var jobs []*job.Job
	var err error
	if w.topic != "" {
		jobs, err = w.consumer.ConsumeTopic(ctx, w.topic, w.batchSize)
	} else {
		jobs, err = w.consumer.Consume(ctx, w.batchSize)
	}
	if err != nil {
		w.log.Error("consume failed", "err", err)
		return
	}
	for _, entry := range jobs {
		if !w.pool.Push(entry) {
			w.log.Debug("job push interrupted via shutdown", "id", entry.JobID)
			return
		}
	}
}

func (w *Worker) handle(ctx context.Context, jb *job.Job) {
	fn, err := w.registry.Resolve(jb.Task)
	if err != nil {
		w.log.Error("cannot dispatch job", "id", jb.JobID, "task", jb.Task, "err", err)
		w.nack(ctx, jb, err.Error())
		return
	}
	result, err := fn(ctx, jb.Body)
	if err != nil {
		w.log.Warn("task handler failed", "id", jb.JobID, "task", jb.Task, "err", err)
		w.nack(ctx, jb, err.Error())
		return
	}
	if _, err := w.acker.Ack(ctx, jb.JobID, result); err != nil {
		w.log.Error("cannot ack job", "id", jb.JobID, "err", err)
	}
}

func (w *Worker) nack(ctx context.Context, jb *job.Job, errMsg string) {
	delay, ok := w.backoff.next(uint32(jb.Retries + 1))
	var scheduledAt *time.Time
	if ok {
		at := time.Now().Add(delay)
		scheduledAt = &at
	}
	if err := w.acker.Nack(ctx, jb.JobID, errMsg, scheduledAt); err != nil {
		w.log.Error("cannot nack job", "id", jb.JobID, "err", err)
	}
}

// Start begins background consumption and processing of jobs.
//
// Start returns ErrDoubleStarted if the worker has already been started.
//
// The provided context controls cancellation of the worker. When ctx is
// canceled, consumption stops and in-flight handlers receive a canceled
// context.
func (w *Worker) Start(ctx context.Context) error {
	if err := w.tryStart(); err != nil {
		return err
	}
	w.pool.Start(ctx, w.handle)
	w.pullTask.Start(ctx, w.pull, w.interval)
	return nil
}

func (w *Worker) doStop() internal.DoneChan {
	first := w.pullTask.Stop()
	second := w.pool.Stop()
	return internal.Combine(first, second)
}

// Stop initiates graceful shutdown of the worker.
//
// Stop performs the following steps:
//
//  1. Stops periodic consumption of new jobs.
//  2. Cancels the internal worker pool.
//  3. Waits for all in-flight handlers to complete.
//
// If shutdown does not complete within the specified timeout,
// ErrStopTimeout is returned. In this case, background goroutines may
// still be terminating.
//
// Stop returns ErrDoubleStopped if the worker is not running.
func (w *Worker) Stop(timeout time.Duration) error {
	return w.tryStop(timeout, w.doStop)
}
