// Package ramp implements the bounded, stepwise level ramp used to fade
// LED brightness toward an extreme.
package ramp

import "lightcup-go/x/mathx"

// Stepper advances an integer level toward Top while asserted and toward 0
// while released, by Step per call. The level never leaves [0, Top]; when
// Top is not a multiple of Step the final increment is shortened so the
// level lands exactly on the bound (e.g. 254 -> 255 with Step 2).
type Stepper struct {
	Level uint8
	Top   uint8
	Step  uint8
}

// Advance performs one sample tick and returns the new level.
func (s *Stepper) Advance(asserted bool) uint8 {
	delta := int(s.Step)
	if !asserted {
		delta = -delta
	}
	s.Level = uint8(mathx.Clamp(int(s.Level)+delta, 0, int(s.Top)))
	return s.Level
}

// Seed snaps the level to the extreme matching the asserted state and
// returns it. Used once at startup so the device powers up without a
// visible fade from an arbitrary level.
func (s *Stepper) Seed(asserted bool) uint8 {
	if asserted {
		s.Level = s.Top
	} else {
		s.Level = 0
	}
	return s.Level
}
