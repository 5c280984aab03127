package hourglass

import (
	"context"
	"time"
)

// Provider is the production-safe wrapper around a Clock. It exposes the
// clock contract everywhere and time mutation only when the underlying clock
// is virtual: TestControl is the sole route to Advance/Set, so a provider
// built from System() has no reachable path to move time.
type Provider struct {
	clock   Clock
	virtual *VirtualClock
}

// New builds a Provider for the clock named by src.
func New(src Source) *Provider {
	switch src.kind {
	case sourceVirtual:
		vc := NewVirtualClock(src.start)
		return &Provider{clock: vc, virtual: vc}
	case sourceVirtualAtNow:
		vc := NewVirtualClockAtNow()
		return &Provider{clock: vc, virtual: vc}
	default:
		return &Provider{clock: SystemClock{}}
	}
}

// NewFromVirtual wraps an existing virtual clock, mainly so tests can share
// one clock between a Provider and code holding the clock directly.
func NewFromVirtual(vc *VirtualClock) *Provider {
	return &Provider{clock: vc, virtual: vc}
}

// Now returns the current instant of the underlying clock.
func (p *Provider) Now() time.Time {
	return p.clock.Now()
}

// Wait suspends for d per the underlying clock's semantics.
func (p *Provider) Wait(ctx context.Context, d time.Duration) {
	p.clock.Wait(ctx, d)
}

// WaitUntil suspends until the underlying clock reaches deadline.
func (p *Provider) WaitUntil(ctx context.Context, deadline time.Time) {
	p.clock.WaitUntil(ctx, deadline)
}

// IsTestMode reports whether the provider is backed by a virtual clock.
func (p *Provider) IsTestMode() bool {
	return p.clock.IsTest()
}

// TestControl returns the mutation handle for the virtual clock. The second
// return is false for system-backed providers, which have no handle at all.
func (p *Provider) TestControl() (*Control, bool) {
	if p.virtual == nil {
		return nil, false
	}
	return newControl(p.virtual), true
}

// Clock returns the provider's clock for injection into consumers that
// accept the narrow contract.
func (p *Provider) Clock() Clock {
	return p.clock
}

// Clone returns a provider sharing the same clock. Clones of a virtual
// provider all observe and advance one shared instant.
func (p *Provider) Clone() *Provider {
	return &Provider{clock: p.clock, virtual: p.virtual}
}
