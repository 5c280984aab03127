package hourglass

import (
	"fmt"
	"time"
)

// Control is the capability handle for mutating a virtual clock. It is
// obtainable only from a Provider built from a virtual source. Holding one
// never implies exclusive ownership: any number of handles may coexist and
// all observe and mutate the same shared clock.
type Control struct {
	clock *VirtualClock
}

func newControl(clock *VirtualClock) *Control {
	return &Control{clock: clock}
}

// Advance moves the clock by d. Wait statistics are untouched.
func (c *Control) Advance(d time.Duration) {
	c.clock.Advance(d)
}

// Set jumps the clock to t. Wait statistics are untouched.
func (c *Control) Set(t time.Time) {
	c.clock.Set(t)
}

// TotalWaited returns the cumulative waited duration since creation or the
// last reset.
func (c *Control) TotalWaited() time.Duration {
	return c.clock.TotalWaited()
}

// WaitCallCount returns the number of waits since creation or the last reset.
func (c *Control) WaitCallCount() int {
	return c.clock.WaitCallCount()
}

// ResetWaitTracking zeroes the wait statistics without moving the clock.
func (c *Control) ResetWaitTracking() {
	c.clock.ResetWaitTracking()
}

func (c *Control) String() string {
	return fmt.Sprintf("Control{total_waited: %s, wait_call_count: %d}",
		c.clock.TotalWaited(), c.clock.WaitCallCount())
}
