package mathx

import "testing"

func TestClamp(t *testing.T) {
	type C struct {
		v, lo, hi, want int
	}
	for _, c := range []C{
		{5, 0, 10, 5},
		{-3, 0, 255, 0},
		{256, 0, 255, 255},
		{7, 10, 0, 7}, // swapped bounds
	} {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Fatalf("Clamp(%d,%d,%d) = %d, want %d", c.v, c.lo, c.hi, got, c.want)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(2, 3) != 2 || Min(3, 2) != 2 {
		t.Fatal("Min")
	}
	if Max(2, 3) != 3 || Max(3, 2) != 3 {
		t.Fatal("Max")
	}
}
