package testkit

import (
	"time"

	"github.com/theory-cloud/hourglass"
)

// Env is a deterministic time environment for tests: a virtual-clock
// provider plus its control handle, built in one call so tests never touch
// the real clock by accident.
type Env struct {
	Provider *hourglass.Provider
	Control  *hourglass.Control
}

// New returns an environment whose clock starts at the Unix epoch.
func New() *Env {
	return NewWithTime(time.Unix(0, 0).UTC())
}

// NewWithTime returns an environment whose clock starts at now.
func NewWithTime(now time.Time) *Env {
	provider := hourglass.New(hourglass.Virtual(now))
	control, ok := provider.TestControl()
	if !ok {
		// Unreachable: a virtual source always yields a control handle.
		panic("testkit: virtual provider without control handle")
	}
	return &Env{Provider: provider, Control: control}
}

// Clock returns the contract-typed clock for injection into consumers.
func (e *Env) Clock() hourglass.Clock {
	return e.Provider.Clock()
}
