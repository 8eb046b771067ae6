package lightcup

import (
	"time"

	"lightcup-go/errcode"
)

// Defaults match the KY-027 reference wiring: sense and actuate every 5ms,
// refresh the display every 100ms, fade by 2 levels per sample tick.
const (
	DefaultSampleInterval = 5 * time.Millisecond
	DefaultRenderInterval = 100 * time.Millisecond
	DefaultStep           = 2
)

// Config carries the firmware constants of the control loop. Zero values
// take the defaults above; negative intervals are rejected.
type Config struct {
	SampleInterval time.Duration
	RenderInterval time.Duration
	Step           uint8

	// Channel names used in telemetry topics.
	NameA string
	NameB string

	Layout Layout
}

func (c *Config) applyDefaults() {
	if c.SampleInterval == 0 {
		c.SampleInterval = DefaultSampleInterval
	}
	if c.RenderInterval == 0 {
		c.RenderInterval = DefaultRenderInterval
	}
	if c.Step == 0 {
		c.Step = DefaultStep
	}
	if c.NameA == "" {
		c.NameA = "a"
	}
	if c.NameB == "" {
		c.NameB = "b"
	}
	if c.Layout.Fields == nil {
		c.Layout = DefaultLayout()
	}
}

func (c *Config) validate() error {
	if c.SampleInterval < 0 || c.RenderInterval < 0 {
		return &errcode.E{C: errcode.InvalidParams, Op: "lightcup.New", Msg: "negative interval"}
	}
	if len(c.Layout.Fields) != numChannels {
		return &errcode.E{C: errcode.InvalidParams, Op: "lightcup.New", Msg: "layout needs one field per channel"}
	}
	if c.Layout.FieldWidth == 0 {
		return &errcode.E{C: errcode.InvalidParams, Op: "lightcup.New", Msg: "zero field width"}
	}
	return nil
}
