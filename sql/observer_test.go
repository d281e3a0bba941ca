package sql_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/vinissimus/jobs/job"
	gsql "github.com/vinissimus/jobs/sql"
)

func TestObserverGetReturnsNilForUnknownJob(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	observer := gsql.NewObserver(db)

	jb, err := observer.Get(ctx, uuid.New())
	require.NoError(t, err)
	require.Nil(t, jb)
}

func TestObserverListQueuedAndRunning(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	publisher := gsql.NewPublisher(db)
	consumer := gsql.NewConsumer(db)
	observer := gsql.NewObserver(db)

	_, err := publisher.Publish(ctx, "atask", nil, nil)
	require.NoError(t, err)

	queued, err := observer.ListQueued(ctx, 0)
	require.NoError(t, err)
	require.Len(t, queued, 1)

	_, err = consumer.Consume(ctx, 1)
	require.NoError(t, err)

	running, err := observer.ListRunning(ctx, 0)
	require.NoError(t, err)
	require.Len(t, running, 1)

	queued, err = observer.ListQueued(ctx, 0)
	require.NoError(t, err)
	require.Empty(t, queued)
}

func TestObserverListFiltersByStatus(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	publisher := gsql.NewPublisher(db)
	consumer := gsql.NewConsumer(db)
	acker := gsql.NewAcker(db)
	observer := gsql.NewObserver(db)

	_, err := publisher.Publish(ctx, "atask", nil, nil)
	require.NoError(t, err)

	consumed, err := consumer.Consume(ctx, 1)
	require.NoError(t, err)
	_, err = acker.Ack(ctx, consumed[0].JobID, nil)
	require.NoError(t, err)

	succeeded, err := observer.List(ctx, job.Success, 0)
	require.NoError(t, err)
	require.Len(t, succeeded, 1)

	failed, err := observer.List(ctx, job.Failed, 0)
	require.NoError(t, err)
	require.Empty(t, failed)
}
