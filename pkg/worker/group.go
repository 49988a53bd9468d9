package worker

import (
	"context"
	"sync"
)

type ErrorJob func(context.Context) error

type Group interface {
	Do(ErrorJob)
	Wait() error
}

type group struct {
	ctx       context.Context
	ctxCancel context.CancelFunc
	failFast  bool

	wg       sync.WaitGroup
	errOnce  sync.Once
	firstErr error
}

// NewFailFastGroup cancels the group context after the first job error.
func NewFailFastGroup(ctx context.Context) (context.Context, Group) {
	return newGroup(ctx, true)
}

func NewFailSafeGroup(ctx context.Context) (context.Context, Group) {
	return newGroup(ctx, false)
}

func newGroup(ctx context.Context, failFast bool) (context.Context, Group) {
	ctx, ctxCancel := context.WithCancel(ctx)
	return ctx, &group{
		ctx:       ctx,
		ctxCancel: ctxCancel,
		failFast:  failFast,
	}
}

func (g *group) Do(job ErrorJob) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()

		err := job(g.ctx)
		if err == nil {
			return
		}

		g.errOnce.Do(func() {
			g.firstErr = err
			if g.failFast {
				g.ctxCancel()
			}
		})
	}()
}

// Wait returns the first job error, if any.
func (g *group) Wait() error {
	g.wg.Wait()
	g.ctxCancel()
	return g.firstErr
}
