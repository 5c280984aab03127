package hourglass

import (
	"context"
	"runtime"
	"sync"
	"time"
)

// VirtualClock is the mutable simulated clock used in test mode. All state
// sits behind one RWMutex and is shared by every Provider clone and Control
// handle referencing the clock. Instants are normalized to UTC.
//
// Wait is additive rather than conditional: each call moves the clock
// forward by its own duration and yields once, so "waiting" never blocks on
// an external advance. With concurrent waiters the final instant is the
// start plus the sum of all durations regardless of interleaving, though any
// single waiter may observe other waiters' time on top of its own.
type VirtualClock struct {
	mu          sync.RWMutex
	current     time.Time
	totalWaited time.Duration
	waitCalls   int
}

var _ Clock = (*VirtualClock)(nil)

// NewVirtualClock returns a virtual clock whose instant starts at start.
func NewVirtualClock(start time.Time) *VirtualClock {
	return &VirtualClock{current: start.UTC()}
}

// NewVirtualClockAtNow returns a virtual clock starting at the current
// system time.
func NewVirtualClockAtNow() *VirtualClock {
	return NewVirtualClock(time.Now())
}

func (c *VirtualClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Wait moves the clock forward by d, records the wait, and yields to the
// scheduler exactly once. Negative durations move the clock backward and are
// recorded like any other wait. The mutation applies even when ctx is
// already cancelled: by the time the caller could observe cancellation the
// clock has moved.
func (c *VirtualClock) Wait(_ context.Context, d time.Duration) {
	c.mu.Lock()
	c.current = c.current.Add(d)
	c.totalWaited += d
	c.waitCalls++
	c.mu.Unlock()

	// Yield strictly after the lock is released.
	runtime.Gosched()
}

// WaitUntil advances the clock to deadline in one critical section. Reading
// the instant and applying the advance atomically means a concurrent
// Advance, Set, or Wait can never make WaitUntil overshoot its deadline. A
// deadline at or before the current instant is a no-op and does not count
// as a wait.
func (c *VirtualClock) WaitUntil(_ context.Context, deadline time.Time) {
	c.mu.Lock()
	if !deadline.After(c.current) {
		c.mu.Unlock()
		return
	}
	c.totalWaited += deadline.Sub(c.current)
	c.current = deadline.UTC()
	c.waitCalls++
	c.mu.Unlock()

	runtime.Gosched()
}

func (c *VirtualClock) IsTest() bool { return true }

// Advance moves the clock by d without touching the wait statistics. It
// models an external operator moving time, not a task waiting.
func (c *VirtualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}

// Set jumps the clock to t. Wait statistics are untouched.
func (c *VirtualClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = t.UTC()
}

// TotalWaited returns the cumulative duration passed to Wait since creation
// or the last ResetWaitTracking.
func (c *VirtualClock) TotalWaited() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.totalWaited
}

// WaitCallCount returns the number of Wait calls since creation or the last
// ResetWaitTracking.
func (c *VirtualClock) WaitCallCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.waitCalls
}

// ResetWaitTracking zeroes TotalWaited and WaitCallCount. The current
// instant is untouched.
func (c *VirtualClock) ResetWaitTracking() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.totalWaited = 0
	c.waitCalls = 0
}
