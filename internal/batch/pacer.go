package batch

import (
	"context"
	"time"
)

// Pacer waits between submissions
type Pacer interface {
	Wait(ctx context.Context, d time.Duration) error
}

// SleepPacer blocks for the full delay using a timer
type SleepPacer struct{}

func (SleepPacer) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
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
