// Package sdk defines the collaborators the governance core depends on: the operation encoder,
// the target invoker, the cross-chain gateway and the clock.
package sdk

import "time"

// Clock returns the current time. Governance calls read it once per call.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock is the wall clock in UTC.
var SystemClock Clock = ClockFunc(func() time.Time { return time.Now().UTC() })
