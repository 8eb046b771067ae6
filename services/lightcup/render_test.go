package lightcup

import (
	"reflect"
	"testing"
)

func TestDrawStaticDrawsChromeOnce(t *testing.T) {
	d := &fakeDisplay{}
	r := newRenderer(d, CompactLayout())

	r.drawStatic()

	want := []string{
		"clear",
		`cursor 0,0`, `print "Magic Light Cups"`,
		`cursor 0,1`, `print "A:"`,
		`cursor 8,1`, `print "B:"`,
	}
	if !reflect.DeepEqual(d.ops, want) {
		t.Fatalf("ops %v, want %v", d.ops, want)
	}
}

func TestDrawLevelsBlanksFixedWidthBeforePrinting(t *testing.T) {
	d := &fakeDisplay{}
	r := newRenderer(d, CompactLayout())

	r.drawLevels([]uint8{255, 8})

	want := []string{
		`cursor 2,1`, `print "   "`, `cursor 2,1`, `print "255"`,
		`cursor 10,1`, `print "   "`, `cursor 10,1`, `print "8"`,
	}
	if !reflect.DeepEqual(d.ops, want) {
		t.Fatalf("ops %v, want %v", d.ops, want)
	}

	// A later shorter value is always preceded by the same full-width
	// blank, so no stale digits survive.
	d.ops = nil
	r.drawLevels([]uint8{4, 0})
	want = []string{
		`cursor 2,1`, `print "   "`, `cursor 2,1`, `print "4"`,
		`cursor 10,1`, `print "   "`, `cursor 10,1`, `print "0"`,
	}
	if !reflect.DeepEqual(d.ops, want) {
		t.Fatalf("ops %v, want %v", d.ops, want)
	}
}

func TestDefaultLayoutHasOneFieldPerChannel(t *testing.T) {
	lay := DefaultLayout()
	if len(lay.Fields) != numChannels {
		t.Fatalf("%d fields, want %d", len(lay.Fields), numChannels)
	}
	if lay.FieldWidth < 3 {
		t.Fatalf("field width %d cannot hold a 3-digit level", lay.FieldWidth)
	}
}
