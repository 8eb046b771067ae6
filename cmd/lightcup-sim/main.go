// Host simulator for the light-cup loop: scripted tilt inputs, an ANSI
// terminal standing in for the panel, and telemetry logged via slog.
// Useful for eyeballing loop behaviour without flashing a board.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"lightcup-go/bus"
	"lightcup-go/services/heartbeat"
	"lightcup-go/services/lightcup"
	"lightcup-go/types"
)

// tiltScript drives a fake tilt line: the cup is tilted (line low) during
// alternating half-periods.
type tiltScript struct {
	start  time.Time
	period time.Duration
	offset time.Duration
}

func (p *tiltScript) Get() bool {
	elapsed := time.Since(p.start) + p.offset
	tilted := (elapsed/(p.period/2))%2 == 1
	return !tilted // active-low
}

// ledSink discards PWM writes; the rendered screen shows the levels.
type ledSink struct{}

func (ledSink) Set(level uint8) {}

// termDisplay renders the text surface with ANSI cursor addressing.
type termDisplay struct{ w io.Writer }

func (d *termDisplay) Clear()                   { fmt.Fprint(d.w, "\x1b[2J") }
func (d *termDisplay) SetCursor(col, row uint8) { fmt.Fprintf(d.w, "\x1b[%d;%dH", row+1, col+1) }
func (d *termDisplay) Print(text []byte)        { d.w.Write(text) }

var _ types.TextDisplay = (*termDisplay)(nil)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	b := bus.New(16)
	hb := &heartbeat.Service{}
	if err := hb.Start(ctx, b.Connect()); err != nil {
		logger.Error("start heartbeat", slog.Any("reason", err))
		os.Exit(1)
	}
	go logLoop(ctx, logger, b.Connect())

	now := time.Now()
	ctrl, err := lightcup.New(lightcup.Config{}, lightcup.Deps{
		SwitchA:   &tiltScript{start: now, period: 4 * time.Second},
		SwitchB:   &tiltScript{start: now, period: 6 * time.Second, offset: time.Second},
		LEDA:      ledSink{},
		LEDB:      ledSink{},
		Display:   &termDisplay{w: os.Stdout},
		Telemetry: b.Connect(),
	})
	if err != nil {
		logger.Error("assemble controller", slog.Any("reason", err))
		os.Exit(1)
	}

	logger.Info("simulator running", slog.String("stop", "Ctrl-C"))
	ctrl.Run(ctx)

	fmt.Print("\x1b[12;1H") // park the cursor below the rendered screen
	logger.Info("simulator stopped")
}

// logLoop narrates telemetry: tilt transitions as they happen, levels once
// per heartbeat.
func logLoop(ctx context.Context, logger *slog.Logger, conn *bus.Connection) {
	tiltA := conn.Subscribe(bus.Topic{"telemetry", "tilt", "a"})
	tiltB := conn.Subscribe(bus.Topic{"telemetry", "tilt", "b"})
	ledA := conn.Subscribe(bus.Topic{"telemetry", "led", "a"})
	ledB := conn.Subscribe(bus.Topic{"telemetry", "led", "b"})
	beat := conn.Subscribe(bus.Topic{"telemetry", "heartbeat"})
	defer conn.Close()

	levels := map[string]uint8{}
	for {
		var msg *bus.Message
		select {
		case <-ctx.Done():
			return
		case msg = <-tiltA.Channel():
		case msg = <-tiltB.Channel():
		case msg = <-ledA.Channel():
		case msg = <-ledB.Channel():
		case msg = <-beat.Channel():
		}

		switch v := msg.Payload.(type) {
		case types.TiltValue:
			logger.Info("tilt", slog.String("channel", v.Channel), slog.Bool("tilted", v.Tilted))
		case types.LEDValue:
			levels[v.Channel] = v.Level
		case heartbeat.Beat:
			logger.Info("levels",
				slog.Uint64("uptime_s", uint64(v.UptimeS)),
				slog.Uint64("a", uint64(levels["a"])),
				slog.Uint64("b", uint64(levels["b"])))
		}
	}
}
