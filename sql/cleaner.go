package sql

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// Cleaner implements jobs.Cleaner against the jobs.purge_history stored
// function.
type Cleaner struct {
	db *bun.DB
}

// NewCleaner creates a new SQL-backed Cleaner.
func NewCleaner(db *bun.DB) *Cleaner {
	return &Cleaner{db: db}
}

// Clean deletes jobs.history rows with completed_at <= before (or all
// rows, if before is nil) via jobs.purge_history.
func (c *Cleaner) Clean(ctx context.Context, before *time.Time) (int64, error) {
	var count int64
	err := c.db.NewRaw("SELECT jobs.purge_history(?)", before).Scan(ctx, &count)
	if err != nil {
		return 0, classify(err)
	}
	return count, nil
}
