// Package worker runs independent jobs in parallel with a bounded number of
// goroutines.
package worker

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers returns the worker count used when none is configured.
func DefaultWorkers() int {
	return runtime.NumCPU()
}

// Map applies fn to every item using at most workers goroutines and returns
// the results in input order. fn also receives the item's index in items.
// A workers value below 1 means DefaultWorkers.
// The first error cancels the context passed to the remaining calls and is
// returned once every started call has finished.
func Map[T, R any](ctx context.Context, workers int, items []T, fn func(ctx context.Context, index int, item T) (R, error)) ([]R, error) {
	if workers < 1 {
		workers = DefaultWorkers()
	}
	if workers > len(items) {
		workers = len(items)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	results := make([]R, len(items))
	if len(items) == 0 {
		return results, nil
	}

	g, ctx := errgroup.WithContext(ctx)

	var indexes = make(chan int)

	g.Go(func() error {
		defer close(indexes)
		for i := range items {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case indexes <- i:
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range indexes {
				if err := ctx.Err(); err != nil {
					return err
				}
				res, err := fn(ctx, i, items[i])
				if err != nil {
					return err
				}
				// Each index is handed to exactly one worker.
				results[i] = res
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
