package hourglass

import (
	"context"
	"time"
)

// SystemClock reads the real system clock. Wait performs a genuine
// wall-clock sleep on the runtime timer.
type SystemClock struct{}

var _ Clock = SystemClock{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Wait sleeps for d. Negative durations are a silent no-op so callers never
// need to special-case them. Cancelling ctx abandons the sleep early.
func (SystemClock) Wait(ctx context.Context, d time.Duration) {
	if d < 0 {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

func (c SystemClock) WaitUntil(ctx context.Context, deadline time.Time) {
	now := c.Now()
	if !deadline.After(now) {
		return
	}
	c.Wait(ctx, deadline.Sub(now))
}

func (SystemClock) IsTest() bool { return false }
