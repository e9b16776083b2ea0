package task

import (
	"context"
	"sync"
	"sync/atomic"
)

// RunBounded runs fn over every item with at most limit concurrently
// active invocations, and returns the results in input order.
//
// Workers claim indices from a shared atomic cursor and each writes only
// the slot it claimed, so output order matches input order regardless of
// completion order and no locking is needed around the results slice.
//
// The policy on failure is fail-fast: the first error any invocation
// returns becomes the overall result, and (nil, err) is returned.
// Workers stop claiming new indices once a failure has been recorded,
// but invocations already in flight are not cancelled; their results are
// discarded. RunBounded returns only after every worker has exited, so
// no goroutine outlives the call.
func RunBounded[T, R any](
	ctx context.Context,
	items []T,
	limit int,
	fn func(ctx context.Context, item T, index int) (R, error),
) ([]R, error) {
	if len(items) == 0 {
		return []R{}, nil
	}

	if limit <= 0 {
		limit = 1
	}

	workerCount := limit
	if len(items) < workerCount {
		workerCount = len(items)
	}

	results := make([]R, len(items))

	var (
		cursor   atomic.Int64
		failed   atomic.Bool
		errOnce  sync.Once
		firstErr error
		wg       sync.WaitGroup
	)

	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for {
				if failed.Load() {
					return
				}

				index := int(cursor.Add(1)) - 1
				if index >= len(items) {
					return
				}

				result, err := fn(ctx, items[index], index)
				if err != nil {
					errOnce.Do(func() {
						firstErr = err
						failed.Store(true)
					})
					return
				}

				results[index] = result
			}
		}()
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	return results, nil
}
