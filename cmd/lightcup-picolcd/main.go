//go:build rp2040

// Variant of the light-cup firmware for a 16x2 HD44780 character LCD on an
// I2C backpack instead of the SPI TFT panel.
package main

import (
	"context"
	"machine"
	"time"

	"lightcup-go/drivers/charlcd"
	"lightcup-go/services/lightcup"
	"lightcup-go/types"
)

// Pin assignment (Pico):
//
//	KY-027 A D0 -> GP2 (input)
//	KY-027 B D0 -> GP3 (input)
//	LED A       -> GP6 (PWM3 channel A)
//	LED B       -> GP7 (PWM3 channel B)
//	LCD         -> I2C0: SDA GP4, SCL GP5
const (
	tiltPinA = machine.GP2
	tiltPinB = machine.GP3
	ledPinA  = machine.GP6
	ledPinB  = machine.GP7

	lcdAddr = 0x27
)

type pwmSlice interface {
	Top() uint32
	Set(ch uint8, value uint32)
}

type pwmOut struct {
	slice pwmSlice
	ch    uint8
}

func (p pwmOut) Set(level uint8) {
	p.slice.Set(p.ch, uint32(level)*p.slice.Top()/255)
}

var _ types.PWMOutput = pwmOut{}

func main() {
	time.Sleep(2 * time.Second)
	println("boot")

	tiltPinA.Configure(machine.PinConfig{Mode: machine.PinInput})
	tiltPinB.Configure(machine.PinConfig{Mode: machine.PinInput})

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

	err = machine.I2C0.Configure(machine.I2CConfig{
		SDA: machine.GP4,
		SCL: machine.GP5,
	})
	if err != nil {
		fatal("configure I2C: " + err.Error())
	}
	display, err := charlcd.New(machine.I2C0, lcdAddr, 16, 2)
	if err != nil {
		fatal(err.Error())
	}

	ctrl, err := lightcup.New(lightcup.Config{
		Layout: lightcup.CompactLayout(),
	}, lightcup.Deps{
		SwitchA: tiltPinA,
		SwitchB: tiltPinB,
		LEDA:    pwmOut{slice: pwm, ch: chA},
		LEDB:    pwmOut{slice: pwm, ch: chB},
		Display: display,
	})
	if err != nil {
		fatal(err.Error())
	}
	ctrl.Run(context.Background())
}

func fatal(msg string) {
	for {
		println(msg)
		time.Sleep(time.Second)
	}
}
