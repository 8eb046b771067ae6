package charlcd

import (
	"errors"
	"testing"

	"lightcup-go/errcode"
	"lightcup-go/types"
)

type fakeI2C struct {
	txs int
	err error
}

func (f *fakeI2C) Tx(addr uint16, w, r []byte) error {
	f.txs++
	return f.err
}

func TestNewConfiguresPanel(t *testing.T) {
	i2c := &fakeI2C{}
	d, err := New(i2c, 0x27, 16, 2)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if i2c.txs == 0 {
		t.Fatal("no init traffic on the I2C bus")
	}
	cols, rows := d.Size()
	if cols != 16 || rows != 2 {
		t.Fatalf("size %dx%d, want 16x2", cols, rows)
	}
	var _ types.TextDisplay = d
}

func TestCursorAndPrintReachTheBus(t *testing.T) {
	i2c := &fakeI2C{}
	d, err := New(i2c, 0x27, 16, 2)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	before := i2c.txs
	d.SetCursor(2, 1)
	d.Print([]byte("255"))
	d.Clear()
	if i2c.txs == before {
		t.Fatal("cursor/print/clear produced no I2C traffic")
	}
}

func TestNewReportsDisplayFault(t *testing.T) {
	i2c := &fakeI2C{err: errors.New("nack")}
	_, err := New(i2c, 0x27, 16, 2)
	if err == nil {
		t.Fatal("expected error from failing bus")
	}
	if errcode.Of(err) != errcode.DisplayFault {
		t.Fatalf("code %v, want %v", errcode.Of(err), errcode.DisplayFault)
	}
}

func TestNewRejectsUnsupportedGeometry(t *testing.T) {
	type C struct {
		cols, rows uint8
	}
	for _, c := range []C{
		{0, 2},
		{16, 0},
		{40, 2},
		{16, 8},
	} {
		_, err := New(&fakeI2C{}, 0x27, c.cols, c.rows)
		if err == nil {
			t.Fatalf("geometry %dx%d accepted", c.cols, c.rows)
		}
		if errcode.Of(err) != errcode.Unsupported {
			t.Fatalf("geometry %dx%d: code %v, want %v", c.cols, c.rows, errcode.Of(err), errcode.Unsupported)
		}
	}
}

func TestClipStopsAtRowEnd(t *testing.T) {
	type C struct {
		text      string
		col, cols uint8
		want      string
	}
	for _, c := range []C{
		{"255", 2, 16, "255"},
		{"12345", 14, 16, "12"}, // mid-row print must not wrap
		{"x", 16, 16, ""},
		{"abc", 0, 3, "abc"},
	} {
		if got := string(clip([]byte(c.text), c.col, c.cols)); got != c.want {
			t.Fatalf("clip(%q,%d,%d) = %q, want %q", c.text, c.col, c.cols, got, c.want)
		}
	}
}

func TestPrintAdvancesCursorColumn(t *testing.T) {
	d, err := New(&fakeI2C{}, 0x27, 16, 2)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	d.SetCursor(12, 0)
	d.Print([]byte("ab"))   // cursor now at 14
	d.Print([]byte("cdef")) // only "cd" fits
	if d.col != 16 {
		t.Fatalf("cursor column %d, want 16", d.col)
	}
}
