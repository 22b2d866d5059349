// Package fanout runs the bounded-parallel sub-stores and sub-fetches a
// single pointer-tree level needs: n independent operations, at most
// concurrency of them in flight at once, results landing back in their
// original slots regardless of completion order.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Run executes fn(ctx, i) for every i in [0, n), bounding the number of
// concurrently running calls to concurrency. It returns the first error
// any call returned, after every call has finished or been cancelled by
// the errgroup's shared context. Completion order across calls is
// unspecified; callers rely on the index argument, not arrival order,
// to place results.
func Run(ctx context.Context, n int, concurrency int, fn func(ctx context.Context, i int) error) error {
	if n == 0 {
		return nil
	}
	if concurrency <= 0 {
		concurrency = 1
	}

	group, gctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(int64(concurrency))

	for i := 0; i < n; i++ {
		i := i
		if err := sem.Acquire(gctx, 1); err != nil {
			// The group's context is done, either because an earlier call
			// failed or because ctx itself was cancelled; stop launching
			// new work and report whichever error ended it.
			if werr := group.Wait(); werr != nil {
				return werr
			}
			return err
		}
		group.Go(func() error {
			defer sem.Release(1)
			return fn(gctx, i)
		})
	}

	return group.Wait()
}
