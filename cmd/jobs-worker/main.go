// Command jobs-worker runs a pool of Worker goroutines against a
// PostgreSQL-backed queue.
//
// It is a thin collaborator around package jobs/jobs.Worker (spec §6.4):
// everything about claiming, leasing and retrying lives in the engine
// (package sql); this binary only wires a Consumer/Acker pair to a
// Registry and starts polling.
//
// jobs-worker ships a single built-in "echo" task handler — it returns
// the job's body unchanged — so the binary is runnable standalone for
// smoke-testing a deployment. A real deployment embeds jobs.Worker
// directly and registers its own task handlers instead of invoking this
// binary.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vinissimus/jobs"
	jobssql "github.com/vinissimus/jobs/sql"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var (
		concurrency  int
		queue        int
		batchSize    int
		pullInterval time.Duration
		topic        string
	)

	root := &cobra.Command{
		Use:   "jobs-worker <dsn>",
		Short: "Run worker goroutines consuming jobs from a PostgreSQL queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dsn := args[0]

			db, err := jobssql.Open(dsn)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			defer db.Close()

			registry := jobs.NewRegistry()
			registry.MustRegister("echo", func(_ context.Context, body json.RawMessage) (json.RawMessage, error) {
				return body, nil
			})

			config := &jobs.WorkerConfig{
				Concurrency:  concurrency,
				Queue:        queue,
				BatchSize:    batchSize,
				PullInterval: pullInterval,
				Topic:        topic,
				Backoff:      jobs.BackoffConfig{},
			}

			worker := jobs.NewWorker(
				jobssql.NewConsumer(db),
				jobssql.NewAcker(db),
				registry,
				config,
				log,
			)

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			if err := worker.Start(ctx); err != nil {
				return fmt.Errorf("start worker: %w", err)
			}
			log.Info("jobs-worker started", "concurrency", concurrency, "batch_size", batchSize, "topic", topic)

			<-ctx.Done()
			log.Info("jobs-worker shutting down")
			if err := worker.Stop(30 * time.Second); err != nil {
				return fmt.Errorf("stop worker: %w", err)
			}
			return nil
		},
	}

	root.Flags().IntVar(&concurrency, "concurrency", 4, "number of concurrent task handlers")
	root.Flags().IntVar(&queue, "queue", 16, "internal buffer size between consume and dispatch")
	root.Flags().IntVar(&batchSize, "batch-size", 10, "maximum jobs fetched per Consume call")
	root.Flags().DurationVar(&pullInterval, "pull-interval", time.Second, "how often to poll for eligible jobs")
	root.Flags().StringVar(&topic, "topic", "", "restrict consumption to tasks matching this LIKE pattern")

	if err := root.ExecuteContext(context.Background()); err != nil {
		log.Error("jobs-worker failed", "err", err)
		os.Exit(1)
	}
}
