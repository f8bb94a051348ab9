// Package fanout provides a bounded-concurrency helper for application-layer
// bulk operations. It runs a function across a slice of items on a fixed pool
// of worker goroutines, preserving input order in the results so callers can
// pair outcomes back to their inputs.
package fanout

import (
	"context"
	"sync"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item in items using maxWorkers worker goroutines.
// Results are returned in the same order as the input items.
//
// Items not yet claimed by a worker when ctx is canceled are recorded with
// ctx.Err() and fn is not called for them. Items already being processed run
// to completion (fn is responsible for checking ctx internally if it supports
// cancellation).
//
// Run blocks until all workers finish. If items is empty, it returns an empty
// non-nil slice immediately. maxWorkers must be >= 1.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}
	if maxWorkers > len(items) {
		maxWorkers = len(items)
	}

	results := make([]Result[R], len(items))
	indices := make(chan int)

	var wg sync.WaitGroup
	wg.Add(maxWorkers)
	for w := 0; w < maxWorkers; w++ {
		go func() {
			defer wg.Done()
			for idx := range indices {
				val, err := fn(ctx, items[idx])
				results[idx] = Result[R]{Value: val, Err: err}
			}
		}()
	}

	for i := range items {
		select {
		case indices <- i:
		case <-ctx.Done():
			results[i] = Result[R]{Err: ctx.Err()}
		}
	}
	close(indices)

	wg.Wait()
	return results
}
