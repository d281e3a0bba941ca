package sql_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vinissimus/jobs/job"
	gsql "github.com/vinissimus/jobs/sql"
)

func TestCleanerPurgesHistory(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	publisher := gsql.NewPublisher(db)
	consumer := gsql.NewConsumer(db)
	acker := gsql.NewAcker(db)
	cleaner := gsql.NewCleaner(db)
	observer := gsql.NewObserver(db)

	published, err := publisher.Publish(ctx, "atask", nil, nil)
	require.NoError(t, err)

	consumed, err := consumer.Consume(ctx, 1)
	require.NoError(t, err)
	require.Len(t, consumed, 1)

	_, err = acker.Ack(ctx, consumed[0].JobID, nil)
	require.NoError(t, err)

	count, err := cleaner.Clean(ctx, nil)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	fetched, err := observer.Get(ctx, published.JobID)
	require.NoError(t, err)
	require.Nil(t, fetched)
}

func TestCleanerLeavesLiveJobsUntouched(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	publisher := gsql.NewPublisher(db)
	cleaner := gsql.NewCleaner(db)
	observer := gsql.NewObserver(db)

	published, err := publisher.Publish(ctx, "atask", nil, nil)
	require.NoError(t, err)

	count, err := cleaner.Clean(ctx, nil)
	require.NoError(t, err)
	require.Equal(t, int64(0), count)

	fetched, err := observer.Get(ctx, published.JobID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	require.Equal(t, job.Queued, fetched.Status)
}
