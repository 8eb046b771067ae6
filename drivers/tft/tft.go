//go:build rp2040

// Package tft adapts an ST7789 TFT panel to the TextDisplay capability,
// drawing a fixed-size font on a character-cell grid.
package tft

import (
	"image/color"

	"machine"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/st7789"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

// Cell geometry for freemono.Regular9pt7b: fixed advance and line height
// in pixels, plus the baseline offset within a cell.
const (
	cellW    = 11
	cellH    = 18
	baseline = 13
)

var (
	fg = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	bg = color.RGBA{A: 255}
)

// Display is an ST7789 panel exposed as a text surface. Print fills each
// cell with the background colour before drawing glyphs, so overprinting
// spaces erases prior text the way a character LCD would.
type Display struct {
	dev  st7789.Device
	font tinyfont.Fonter
	cols uint8
	rows uint8
	col  uint8
	row  uint8
}

// Config selects the SPI wiring of the panel.
type Config struct {
	Width    int16
	Height   int16
	Rotation drivers.Rotation
	Reset    machine.Pin
	DC       machine.Pin
	CS       machine.Pin
	Bl       machine.Pin
}

// New brings up the panel and clears it.
func New(spi drivers.SPI, cfg Config) *Display {
	dev := st7789.New(spi, cfg.Reset, cfg.DC, cfg.CS, cfg.Bl)
	dev.Configure(st7789.Config{
		Width:    cfg.Width,
		Height:   cfg.Height,
		Rotation: cfg.Rotation,
	})

	d := &Display{
		dev:  dev,
		font: &freemono.Regular9pt7b,
	}
	w, h := d.dev.Size()
	d.cols = uint8(w / cellW)
	d.rows = uint8(h / cellH)
	d.Clear()
	return d
}

// Size returns the surface geometry in cells.
func (d *Display) Size() (cols, rows uint8) { return d.cols, d.rows }

func (d *Display) Clear() {
	d.dev.FillScreen(bg)
	d.col, d.row = 0, 0
}

func (d *Display) SetCursor(col, row uint8) {
	d.col, d.row = col, row
}

func (d *Display) Print(text []byte) {
	x := int16(d.col) * cellW
	y := int16(d.row) * cellH
	// Blank the covered cells first; tinyfont draws glyphs only.
	d.dev.FillRectangle(x, y, int16(len(text))*cellW, cellH, bg)
	tinyfont.WriteLine(&d.dev, d.font, x, y+baseline, string(text), fg)
	d.col += uint8(len(text))
}
