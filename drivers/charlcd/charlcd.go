// Package charlcd adapts an HD44780 character LCD behind an I²C backpack
// to the TextDisplay capability.
package charlcd

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/hd44780i2c"

	"lightcup-go/errcode"
)

// Largest geometry the HD44780 controller can address.
const (
	maxCols = 20
	maxRows = 4
)

// Device is a character LCD text surface. The HD44780 is a true text-mode
// controller, so printing spaces inherently erases prior glyphs.
type Device struct {
	lcd  hd44780i2c.Device
	cols uint8
	rows uint8
	col  uint8
}

// New configures an LCD of the given geometry at addr (commonly 0x27 or
// 0x3F) on bus.
func New(bus drivers.I2C, addr uint8, cols, rows uint8) (*Device, error) {
	if cols == 0 || rows == 0 || cols > maxCols || rows > maxRows {
		return nil, &errcode.E{C: errcode.Unsupported, Op: "charlcd.New", Msg: "unsupported geometry"}
	}
	lcd := hd44780i2c.New(bus, addr)
	err := lcd.Configure(hd44780i2c.Config{
		Width:  cols,
		Height: rows,
	})
	if err != nil {
		return nil, &errcode.E{C: errcode.DisplayFault, Op: "charlcd.New", Err: err}
	}
	return &Device{lcd: lcd, cols: cols, rows: rows}, nil
}

// Size returns the surface geometry in cells.
func (d *Device) Size() (cols, rows uint8) { return d.cols, d.rows }

func (d *Device) Clear() {
	d.lcd.ClearDisplay()
	d.col = 0 // clear homes the cursor
}

func (d *Device) SetCursor(col, row uint8) {
	d.lcd.SetCursor(col, row)
	d.col = col
}

// Print writes text at the cursor, clipped to the end of the row so a
// print starting mid-row never wraps. Write failures are unobservable, as
// with the rest of the device's I/O.
func (d *Device) Print(text []byte) {
	text = clip(text, d.col, d.cols)
	d.lcd.Print(text)
	d.col += uint8(len(text))
}

// clip truncates text to the cells remaining between col and the row end.
func clip(text []byte, col, cols uint8) []byte {
	if col >= cols {
		return nil
	}
	if rem := int(cols - col); len(text) > rem {
		return text[:rem]
	}
	return text
}
