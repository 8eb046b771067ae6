// Package timex provides the injected clock and interval gates that drive
// the cooperative polling loop.
package timex

import "time"

// Clock supplies the current time. Production code uses Wall; tests supply
// a fake so loop timing can be simulated without real delays.
type Clock interface {
	Now() time.Time
}

// Wall is the real-time clock.
type Wall struct{}

func (Wall) Now() time.Time { return time.Now() }

// Gate is a due predicate for one fixed-interval stage. Due reports whether
// at least Every has elapsed since the last firing and, if so, latches the
// firing time. Two independent gates checked in a single loop form a
// dual-rate cooperative scheduler.
type Gate struct {
	Every time.Duration
	last  time.Time
}

// NewGate returns a gate that first fires Every after now.
func NewGate(every time.Duration, now time.Time) Gate {
	return Gate{Every: every, last: now}
}

// Due reports whether the stage should run at now, latching now when it is.
func (g *Gate) Due(now time.Time) bool {
	if now.Sub(g.last) < g.Every {
		return false
	}
	g.last = now
	return true
}
