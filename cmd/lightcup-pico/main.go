//go:build rp2040

package main

import (
	"context"
	"io"
	"machine"
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers"

	"lightcup-go/bus"
	"lightcup-go/drivers/tft"
	"lightcup-go/services/heartbeat"
	"lightcup-go/services/lightcup"
	"lightcup-go/types"
	"lightcup-go/x/conv"
)

// Pin assignment (Pico):
//
//	KY-027 A D0  -> GP2 (input)
//	KY-027 B D0  -> GP4 (input)
//	LED A        -> GP6 (PWM3 channel A)
//	LED B        -> GP7 (PWM3 channel B)
//	ST7789 panel -> SPI0: SCK GP18, SDO GP19; RESET GP20, DC GP16, CS GP17, BL GP21
//	Console      -> UART0: TX GP0, RX GP1
const (
	tiltPinA = machine.GP2
	tiltPinB = machine.GP4
	ledPinA  = machine.GP6
	ledPinB  = machine.GP7

	tftReset = machine.GP20
	tftDC    = machine.GP16
	tftCS    = machine.GP17
	tftBL    = machine.GP21
)

// pwmSlice is the slice of the machine PWM peripheral we use.
type pwmSlice interface {
	Top() uint32
	Set(ch uint8, value uint32)
}

// pwmOut maps the 8-bit logical level onto one channel of a PWM slice.
type pwmOut struct {
	slice pwmSlice
	ch    uint8
}

func (p pwmOut) Set(level uint8) {
	p.slice.Set(p.ch, uint32(level)*p.slice.Top()/255)
}

var _ types.PWMOutput = pwmOut{}

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	uart := uartx.UART0
	_ = uart.Configure(uartx.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	tiltPinA.Configure(machine.PinConfig{Mode: machine.PinInput})
	tiltPinB.Configure(machine.PinConfig{Mode: machine.PinInput})

	// 20kHz carrier keeps LED dimming flicker-free.
	pwm := machine.PWM3
	if err := pwm.Configure(machine.PWMConfig{Period: uint64(50 * time.Microsecond)}); err != nil {
		fatal("configure PWM: " + err.Error())
	}
	chA, err := pwm.Channel(ledPinA)
	if err != nil {
		fatal("PWM channel A: " + err.Error())
	}
	chB, err := pwm.Channel(ledPinB)
	if err != nil {
		fatal("PWM channel B: " + err.Error())
	}

	err = machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 8_000_000,
		SCK:       machine.GP18,
		SDO:       machine.GP19,
	})
	if err != nil {
		fatal("configure SPI: " + err.Error())
	}
	display := tft.New(machine.SPI0, tft.Config{
		Width:    240,
		Height:   320,
		Rotation: drivers.Rotation0,
		Reset:    tftReset,
		DC:       tftDC,
		CS:       tftCS,
		Bl:       tftBL,
	})

	ctx := context.Background()
	b := bus.New(16)

	hb := &heartbeat.Service{}
	_ = hb.Start(ctx, b.Connect())
	go consoleLoop(uart, b.Connect())

	ctrl, err := lightcup.New(lightcup.Config{}, lightcup.Deps{
		SwitchA:   tiltPinA,
		SwitchB:   tiltPinB,
		LEDA:      pwmOut{slice: pwm, ch: chA},
		LEDB:      pwmOut{slice: pwm, ch: chB},
		Display:   display,
		Telemetry: b.Connect(),
	})
	if err != nil {
		fatal(err.Error())
	}
	ctrl.Run(ctx)
}

// consoleLoop mirrors telemetry onto the UART, one short line per message.
func consoleLoop(w io.Writer, conn *bus.Connection) {
	tiltA := conn.Subscribe(bus.Topic{"telemetry", "tilt", "a"})
	tiltB := conn.Subscribe(bus.Topic{"telemetry", "tilt", "b"})
	beat := conn.Subscribe(bus.Topic{"telemetry", "heartbeat"})

	line := make([]byte, 0, 32)
	for {
		var msg *bus.Message
		select {
		case msg = <-tiltA.Channel():
		case msg = <-tiltB.Channel():
		case msg = <-beat.Channel():
		}

		line = line[:0]
		switch v := msg.Payload.(type) {
		case types.TiltValue:
			line = append(line, "tilt "...)
			line = append(line, v.Channel...)
			if v.Tilted {
				line = append(line, " on\n"...)
			} else {
				line = append(line, " off\n"...)
			}
		case heartbeat.Beat:
			line = append(line, "up "...)
			line = conv.AppendUint32(line, v.UptimeS)
			line = append(line, "s\n"...)
		default:
			continue
		}
		_, _ = w.Write(line)
	}
}

func fatal(msg string) {
	for {
		println(msg)
		time.Sleep(time.Second)
	}
}
