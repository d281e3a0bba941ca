// Command jobs-migrator applies the queue engine's embedded migrations to
// a PostgreSQL database.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	jobssql "github.com/vinissimus/jobs/sql"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	root := &cobra.Command{
		Use:   "jobs-migrator <dsn>",
		Short: "Apply pending jobs queue migrations to a PostgreSQL database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dsn := args[0]

			db, err := jobssql.Open(dsn)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			defer db.Close()

			applied, err := jobssql.NewMigrator(db).Migrate(cmd.Context())
			if err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			log.Info("migrations applied", "count", applied)
			return nil
		},
	}

	if err := root.ExecuteContext(context.Background()); err != nil {
		log.Error("jobs-migrator failed", "err", err)
		os.Exit(1)
	}
}
