// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"math"
	"math/rand"
	"time"
)

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// ExponentialDelay draws an inter-arrival delay for a Poisson process with the
// given rate (events per second). A non-positive rate yields zero.
func ExponentialDelay(r *rand.Rand, ratePerSecond float64) time.Duration {
	if ratePerSecond <= 0 {
		return 0
	}
	seconds := -math.Log(1-r.Float64()) / ratePerSecond
	return time.Duration(math.Round(seconds*1000)) * time.Millisecond
}

// Jitter returns a uniformly random duration in [0, maxDelay).
func Jitter(r *rand.Rand, maxDelay time.Duration) time.Duration {
	if maxDelay <= 0 {
		return 0
	}
	return time.Duration(r.Int63n(int64(maxDelay)))
}
