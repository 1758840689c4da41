// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Run starts workerCount long-lived workers, each invoked once with its index.
// The first worker to return a non-nil error cancels the shared context and
// its error is returned once every worker has exited. onCancel, when set, is
// called exactly once on that first failure.
func Run(
	ctx context.Context,
	workerCount int,
	work func(ctx context.Context, worker int) error,
	onCancel func(),
) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			if err := work(ctx, worker); err != nil {
				once.Do(func() {
					firstErr = err
					if onCancel != nil {
						onCancel()
					}
					cancel()
				})
			}
		}(i)
	}

	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}
