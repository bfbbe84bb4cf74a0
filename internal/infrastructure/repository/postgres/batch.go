package postgres

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
)

const (
	defaultBatchSize    = 1000
	defaultBatchWorkers = 4
)

// runBatches splits total rows into contiguous [start,end) chunks and
// executes fn for each chunk on a bounded worker pool. Chunks run
// unordered; the first error observed wins and remaining chunks are
// still drained.
func runBatches(ctx context.Context, total, batchSize, workers int, fn func(ctx context.Context, start, end int) error) error {
	if total <= 0 {
		return nil
	}
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	if workers <= 0 {
		workers = defaultBatchWorkers
	}

	if total <= batchSize {
		return fn(ctx, 0, total)
	}

	chunks := (total + batchSize - 1) / batchSize
	if workers > chunks {
		workers = chunks
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return fmt.Errorf("create batch worker pool: %w", err)
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for start := 0; start < total; start += batchSize {
		start := start
		end := start + batchSize
		if end > total {
			end = total
		}

		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()

			if err := fn(ctx, start, end); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}); err != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = fmt.Errorf("submit batch to worker pool: %w", err)
			}
			mu.Unlock()
			break
		}
	}

	wg.Wait()
	return firstErr
}
