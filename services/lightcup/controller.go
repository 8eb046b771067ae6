// Package lightcup runs the two-channel magic-light-cup control loop:
// tilt switches in, fading PWM brightness out, with a slower display
// refresh showing the live levels.
package lightcup

import (
	"context"
	"time"

	"lightcup-go/bus"
	"lightcup-go/drivers/ky027"
	"lightcup-go/errcode"
	"lightcup-go/types"
	"lightcup-go/x/ramp"
	"lightcup-go/x/timex"
)

const numChannels = 2

// Sleep between loop iterations so the TinyGo scheduler can run other
// goroutines. Short enough that stage timing jitter stays well under the
// sample interval.
const loopYield = 500 * time.Microsecond

// Deps are the hardware capabilities the controller drives. Clock and
// Telemetry are optional; everything else is required.
type Deps struct {
	Clock timex.Clock

	SwitchA, SwitchB types.DigitalInput
	LEDA, LEDB       types.PWMOutput
	Display          types.TextDisplay

	Telemetry *bus.Connection
}

type channel struct {
	name   string
	tilt   ky027.Module
	led    types.PWMOutput
	ramp   ramp.Stepper
	tilted bool

	tiltTopic bus.Topic
	ledTopic  bus.Topic
}

// Controller owns all mutable state of the device. It is driven by exactly
// one execution context and holds no locks.
type Controller struct {
	clock timex.Clock

	sampleEvery time.Duration
	renderEvery time.Duration
	sample      timex.Gate
	render      timex.Gate

	chans [numChannels]channel
	rend  *renderer
	tel   *bus.Connection

	levels [numChannels]uint8
}

// New validates cfg and assembles a controller. Call Init (or Run, which
// does it for you) before polling.
func New(cfg Config, deps Deps) (*Controller, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if deps.SwitchA == nil || deps.SwitchB == nil || deps.LEDA == nil || deps.LEDB == nil {
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "lightcup.New", Msg: "missing pin"}
	}
	if deps.Display == nil {
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "lightcup.New", Msg: "missing display"}
	}
	if deps.Clock == nil {
		deps.Clock = timex.Wall{}
	}

	c := &Controller{
		clock:       deps.Clock,
		sampleEvery: cfg.SampleInterval,
		renderEvery: cfg.RenderInterval,
		rend:        newRenderer(deps.Display, cfg.Layout),
		tel:         deps.Telemetry,
	}
	c.chans[0] = newChannel(cfg.NameA, deps.SwitchA, deps.LEDA, cfg.Step)
	c.chans[1] = newChannel(cfg.NameB, deps.SwitchB, deps.LEDB, cfg.Step)
	return c, nil
}

func newChannel(name string, in types.DigitalInput, out types.PWMOutput, step uint8) channel {
	return channel{
		name:      name,
		tilt:      ky027.New(in),
		led:       out,
		ramp:      ramp.Stepper{Top: 255, Step: step},
		tiltTopic: bus.Topic{"telemetry", "tilt", name},
		ledTopic:  bus.Topic{"telemetry", "led", name},
	}
}

// Init draws the static display chrome, seeds each channel's brightness to
// the extreme matching its sampled tilt state, and writes both outputs.
// This all happens before any timed stage runs, so the device powers up
// already showing the correct light instead of fading in from zero.
func (c *Controller) Init() {
	c.rend.drawStatic()

	for i := range c.chans {
		ch := &c.chans[i]
		ch.tilted = ch.tilt.Tilted()
		lvl := ch.ramp.Seed(ch.tilted)
		ch.led.Set(lvl)
		c.levels[i] = lvl
		c.publishTilt(ch)
		c.publishLevel(ch)
	}

	now := c.clock.Now()
	c.sample = timex.NewGate(c.sampleEvery, now)
	c.render = timex.NewGate(c.renderEvery, now)
}

// Poll runs one loop iteration at now: the sample-and-actuate stage first
// if due, then the render stage if due. Both, one, or neither may fire.
func (c *Controller) Poll(now time.Time) {
	if c.sample.Due(now) {
		for i := range c.chans {
			ch := &c.chans[i]
			tilted := ch.tilt.Tilted()
			if tilted != ch.tilted {
				ch.tilted = tilted
				c.publishTilt(ch)
			}
			lvl := ch.ramp.Advance(tilted)
			ch.led.Set(lvl)
			c.levels[i] = lvl
		}
	}

	if c.render.Due(now) {
		c.rend.drawLevels(c.levels[:])
		for i := range c.chans {
			c.publishLevel(&c.chans[i])
		}
	}
}

// Run initialises the device and polls until ctx is cancelled. Firmware
// passes context.Background() and never returns.
func (c *Controller) Run(ctx context.Context) {
	c.Init()
	for ctx.Err() == nil {
		c.Poll(c.clock.Now())
		time.Sleep(loopYield)
	}
}

// Levels returns the current brightness of both channels.
func (c *Controller) Levels() (a, b uint8) {
	return c.levels[0], c.levels[1]
}

func (c *Controller) publishTilt(ch *channel) {
	if c.tel == nil {
		return
	}
	c.tel.PublishRetained(ch.tiltTopic, types.TiltValue{Channel: ch.name, Tilted: ch.tilted})
}

func (c *Controller) publishLevel(ch *channel) {
	if c.tel == nil {
		return
	}
	c.tel.PublishRetained(ch.ledTopic, types.LEDValue{Channel: ch.name, Level: ch.ramp.Level})
}
