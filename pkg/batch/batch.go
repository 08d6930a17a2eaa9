// Package batch applies a plot to many independent rows in parallel.
package batch

import (
	"context"
	"runtime"
	"sync"

	"github.com/arthur-debert/textplot/pkg/errors"
	"github.com/arthur-debert/textplot/pkg/logging"
)

// Workers returns the pool size Map uses for n rows when asked for want
// workers. want <= 0 means one per CPU.
func Workers(want, n int) int {
	if want <= 0 {
		want = runtime.GOMAXPROCS(0)
	}
	return max(min(want, n), 1)
}

// Map calls fn on every row with a bounded pool of workers and returns the
// results in input order. fn must not block; cancellation is only observed
// between rows, in which case Map returns the context error and no results.
func Map[In, Out any](ctx context.Context, rows []In, workers int, fn func(In) Out) ([]Out, error) {
	out := make([]Out, len(rows))
	if len(rows) == 0 {
		return out, nil
	}

	numWorkers := Workers(workers, len(rows))
	logger := logging.GetLogger("batch")
	logger.Debug().
		Int("rows", len(rows)).
		Int("workers", numWorkers).
		Msg("Starting batch")

	var wg sync.WaitGroup
	jobs := make(chan int, numWorkers)

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				out[i] = fn(rows[i])
			}
		}()
	}

	var err error
feed:
	for i := range rows {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "batch cancelled")
	}
	return out, nil
}
