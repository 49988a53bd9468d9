package worker_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/hwstore-client/pkg/log"
	"github.com/klwxsrx/hwstore-client/pkg/worker"
)

func TestFailFastGroup_CancelsOthersOnError(t *testing.T) {
	jobErr := errors.New("boom")
	ctx, group := worker.NewFailFastGroup(context.Background())

	group.Do(func(context.Context) error {
		return jobErr
	})
	group.Do(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	assert.ErrorIs(t, group.Wait(), jobErr)
	assert.Error(t, ctx.Err())
}

func TestFailSafeGroup_RunsEveryJob(t *testing.T) {
	var completed atomic.Int32
	_, group := worker.NewFailSafeGroup(context.Background())

	for i := 0; i < 5; i++ {
		i := i
		group.Do(func(context.Context) error {
			completed.Add(1)
			if i == 0 {
				return errors.New("first failed")
			}
			return nil
		})
	}

	require.Error(t, group.Wait())
	assert.Equal(t, int32(5), completed.Load())
}

func TestPeriodicalContextJob_StopsOnCancel(t *testing.T) {
	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())

	job := worker.PeriodicalContextJob(func(context.Context) error {
		if calls.Add(1) >= 3 {
			cancel()
		}
		return errors.New("logged only")
	}, time.Millisecond, log.NewStub())

	err := job(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.GreaterOrEqual(t, calls.Load(), int32(3))
}
