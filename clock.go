package hourglass

import (
	"context"
	"time"
)

// Clock is the contract every time source implements.
//
// Exactly two implementations exist: SystemClock, which reads the real clock
// and genuinely sleeps, and VirtualClock, which holds a mutable simulated
// instant and never sleeps. Consumers hold a Clock (usually via Provider)
// and stay agnostic to which one is behind it.
type Clock interface {
	// Now returns the clock's current instant. It never blocks.
	Now() time.Time

	// Wait suspends the caller for d according to the clock's semantics.
	// Any duration is accepted, including zero and negative values.
	Wait(ctx context.Context, d time.Duration)

	// WaitUntil suspends until the clock is at or past deadline. A deadline
	// at or before Now is an immediate no-op with no side effects.
	WaitUntil(ctx context.Context, deadline time.Time)

	// IsTest reports whether this is a virtual clock.
	IsTest() bool
}
