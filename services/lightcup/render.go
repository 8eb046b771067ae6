package lightcup

import (
	"lightcup-go/types"
	"lightcup-go/x/conv"
)

// Line is a static text element drawn exactly once at startup.
type Line struct {
	Col, Row uint8
	Text     string
}

// Field is the cell position of one dynamic numeric readout.
type Field struct {
	Col, Row uint8
}

// Layout places the static chrome and the per-channel brightness fields on
// the text surface. FieldWidth is the blanking width: each refresh
// overprints that many spaces before the new value so a shorter number
// never leaves stale digits behind.
type Layout struct {
	Static     []Line
	Fields     []Field
	FieldWidth uint8
}

// DefaultLayout mirrors the original device screen: a boxed header and a
// labelled brightness readout per channel.
func DefaultLayout() Layout {
	return Layout{
		Static: []Line{
			{Col: 0, Row: 0, Text: "----------------------"},
			{Col: 0, Row: 1, Text: "KY027 Magic Light Cups"},
			{Col: 0, Row: 2, Text: "----------------------"},
			{Col: 0, Row: 4, Text: "LED A brightness:"},
			{Col: 0, Row: 7, Text: "LED B brightness:"},
		},
		Fields:     []Field{{Col: 0, Row: 5}, {Col: 0, Row: 8}},
		FieldWidth: 6,
	}
}

// CompactLayout fits both readouts on one row of a 16x2 character LCD.
func CompactLayout() Layout {
	return Layout{
		Static: []Line{
			{Col: 0, Row: 0, Text: "Magic Light Cups"},
			{Col: 0, Row: 1, Text: "A:"},
			{Col: 8, Row: 1, Text: "B:"},
		},
		Fields:     []Field{{Col: 2, Row: 1}, {Col: 10, Row: 1}},
		FieldWidth: 3,
	}
}

// renderer owns the display and redraws the dynamic fields.
type renderer struct {
	disp  types.TextDisplay
	lay   Layout
	blank []byte
	buf   []byte
}

func newRenderer(disp types.TextDisplay, lay Layout) *renderer {
	blank := make([]byte, lay.FieldWidth)
	for i := range blank {
		blank[i] = ' '
	}
	return &renderer{
		disp:  disp,
		lay:   lay,
		blank: blank,
		buf:   make([]byte, 0, 4),
	}
}

// drawStatic clears the surface and draws the chrome. Called once; the
// static text is never redrawn afterwards.
func (r *renderer) drawStatic() {
	r.disp.Clear()
	for _, ln := range r.lay.Static {
		r.disp.SetCursor(ln.Col, ln.Row)
		r.disp.Print([]byte(ln.Text))
	}
}

// drawLevels refreshes every brightness field: blank to the fixed width,
// then print the current value.
func (r *renderer) drawLevels(levels []uint8) {
	for i, f := range r.lay.Fields {
		r.disp.SetCursor(f.Col, f.Row)
		r.disp.Print(r.blank)
		r.disp.SetCursor(f.Col, f.Row)
		r.disp.Print(conv.AppendUint8(r.buf[:0], levels[i]))
	}
}
