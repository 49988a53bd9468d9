package cmd_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klwxsrx/hwstore-client/pkg/cmd"
	"github.com/klwxsrx/hwstore-client/pkg/log"
)

func TestRun(t *testing.T) {
	blocking := func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}

	t.Run("completed job stops the rest", func(t *testing.T) {
		err := cmd.Run(context.Background(), log.NewStub(),
			blocking,
			func(context.Context) error { return nil },
		)
		assert.NoError(t, err)
	})

	t.Run("failed job is reported", func(t *testing.T) {
		jobErr := errors.New("listen failed")
		err := cmd.Run(context.Background(), log.NewStub(),
			blocking,
			func(context.Context) error { return jobErr },
		)
		assert.ErrorIs(t, err, jobErr)
	})

	t.Run("MustRun panics on failure", func(t *testing.T) {
		assert.Panics(t, func() {
			cmd.MustRun(context.Background(), log.NewStub(), func(context.Context) error {
				return errors.New("fail")
			})
		})
	})
}
