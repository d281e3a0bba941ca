package jobs_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/vinissimus/jobs"
	"github.com/vinissimus/jobs/job"
)

// fakeBackend implements both jobs.Consumer and jobs.Acker against an
// in-memory queue, so Worker can be exercised without a database.
type fakeBackend struct {
	mu    sync.Mutex
	queue []*job.Job
	topic string

	acked  chan uuid.UUID
	nacked chan string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		acked:  make(chan uuid.UUID, 10),
		nacked: make(chan string, 10),
	}
}

func (f *fakeBackend) push(jb *job.Job) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queue = append(f.queue, jb)
}

func (f *fakeBackend) Consume(ctx context.Context, n int) ([]*job.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.queue) == 0 || n <= 0 {
		return []*job.Job{}, nil
	}
	if n > len(f.queue) {
		n = len(f.queue)
	}
	out := f.queue[:n]
	f.queue = f.queue[n:]
	return out, nil
}

func (f *fakeBackend) ConsumeTopic(ctx context.Context, topic string, n int) ([]*job.Job, error) {
	f.mu.Lock()
	f.topic = topic
	f.mu.Unlock()
	return f.Consume(ctx, n)
}

func (f *fakeBackend) Ack(ctx context.Context, id uuid.UUID, result []byte) (*job.Job, error) {
	f.acked <- id
	return &job.Job{JobID: id, Status: job.Success, Result: result}, nil
}

func (f *fakeBackend) Nack(ctx context.Context, id uuid.UUID, errMsg string, scheduledAt *time.Time) error {
	f.nacked <- errMsg
	return nil
}

func newTestWorker(t *testing.T, backend *fakeBackend, registry *jobs.Registry, cfg *jobs.WorkerConfig) *jobs.Worker {
	t.Helper()
	return jobs.NewWorker(backend, backend, registry, cfg, slog.Default())
}

func TestWorkerProcessesJob(t *testing.T) {
	backend := newFakeBackend()
	registry := jobs.NewRegistry()

	handlerCalled := make(chan struct{}, 1)
	registry.MustRegister("echo", func(ctx context.Context, body json.RawMessage) (json.RawMessage, error) {
		handlerCalled <- struct{}{}
		return body, nil
	})

	cfg := &jobs.WorkerConfig{
		Concurrency:  1,
		Queue:        10,
		BatchSize:    1,
		PullInterval: 20 * time.Millisecond,
	}

	worker := newTestWorker(t, backend, registry, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, worker.Start(ctx))

	id := uuid.New()
	backend.push(&job.Job{JobID: id, Task: "echo", Body: json.RawMessage(`{}`)})

	select {
	case <-handlerCalled:
	case <-time.After(time.Second):
		t.Fatal("handler not called")
	}

	select {
	case acked := <-backend.acked:
		require.Equal(t, id, acked)
	case <-time.After(time.Second):
		t.Fatal("job not acked")
	}

	require.NoError(t, worker.Stop(time.Second))
}

func TestWorkerNacksOnHandlerFailure(t *testing.T) {
	backend := newFakeBackend()
	registry := jobs.NewRegistry()

	registry.MustRegister("boom", func(ctx context.Context, body json.RawMessage) (json.RawMessage, error) {
		return nil, errors.New("handler exploded")
	})

	cfg := &jobs.WorkerConfig{
		Concurrency:  1,
		Queue:        10,
		BatchSize:    1,
		PullInterval: 20 * time.Millisecond,
		Backoff: jobs.BackoffConfig{
			MaxRetries:      3,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     100 * time.Millisecond,
			Multiplier:      1,
		},
	}

	worker := newTestWorker(t, backend, registry, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, worker.Start(ctx))

	backend.push(&job.Job{JobID: uuid.New(), Task: "boom", Body: json.RawMessage(`{}`)})

	select {
	case msg := <-backend.nacked:
		require.Equal(t, "handler exploded", msg)
	case <-time.After(time.Second):
		t.Fatal("job not nacked")
	}

	require.NoError(t, worker.Stop(time.Second))
}

func TestWorkerNacksUnregisteredTask(t *testing.T) {
	backend := newFakeBackend()
	registry := jobs.NewRegistry()

	cfg := &jobs.WorkerConfig{
		Concurrency:  1,
		Queue:        10,
		BatchSize:    1,
		PullInterval: 20 * time.Millisecond,
	}

	worker := newTestWorker(t, backend, registry, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, worker.Start(ctx))

	backend.push(&job.Job{JobID: uuid.New(), Task: "unknown.task", Body: json.RawMessage(`{}`)})

	select {
	case <-backend.nacked:
	case <-time.After(time.Second):
		t.Fatal("job not nacked")
	}

	require.NoError(t, worker.Stop(time.Second))
}

func TestWorkerConsumesTopicWhenConfigured(t *testing.T) {
	backend := newFakeBackend()
	registry := jobs.NewRegistry()

	registry.MustRegister("mail.send", func(ctx context.Context, body json.RawMessage) (json.RawMessage, error) {
		return nil, nil
	})

	cfg := &jobs.WorkerConfig{
		Concurrency:  1,
		Queue:        10,
		BatchSize:    1,
		PullInterval: 20 * time.Millisecond,
		Topic:        "mail.%",
	}

	worker := newTestWorker(t, backend, registry, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, worker.Start(ctx))

	backend.push(&job.Job{JobID: uuid.New(), Task: "mail.send", Body: json.RawMessage(`{}`)})

	select {
	case <-backend.acked:
	case <-time.After(time.Second):
		t.Fatal("job not acked")
	}

	backend.mu.Lock()
	topic := backend.topic
	backend.mu.Unlock()
	require.Equal(t, "mail.%", topic)

	require.NoError(t, worker.Stop(time.Second))
}
