// Package ky027 reads a KY-027 "magic light cup" tilt module.
//
// The module's D0 line is active-low: the ball closing the switch pulls
// the line to ground, so a low electrical level means tilted.
package ky027

import "lightcup-go/types"

// Module is one tilt switch on a digital input line.
type Module struct {
	in types.DigitalInput
}

func New(in types.DigitalInput) Module {
	return Module{in: in}
}

// Tilted samples the line and returns the logical orientation state.
// No debouncing: a stuck or floating line yields a steady boolean.
func (m Module) Tilted() bool {
	return !m.in.Get()
}
