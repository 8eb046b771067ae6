package ramp

import "testing"

func TestAdvanceUpClampsLastStep(t *testing.T) {
	s := Stepper{Top: 255, Step: 2}
	var got []uint8
	for i := 0; i < 130; i++ {
		got = append(got, s.Advance(true))
	}
	// 2,4,...,254 then a shortened final step to exactly 255.
	for i := 0; i < 127; i++ {
		want := uint8(2 * (i + 1))
		if got[i] != want {
			t.Fatalf("tick %d: level %d, want %d", i, got[i], want)
		}
	}
	if got[127] != 255 {
		t.Fatalf("tick 127: level %d, want 255", got[127])
	}
	// Stays pinned once at the top.
	for i := 128; i < len(got); i++ {
		if got[i] != 255 {
			t.Fatalf("tick %d: level %d, want 255", i, got[i])
		}
	}
}

func TestAdvanceDownClampsAtZero(t *testing.T) {
	s := Stepper{Level: 255, Top: 255, Step: 2}
	for i := 0; i < 130; i++ {
		s.Advance(false)
	}
	if s.Level != 0 {
		t.Fatalf("level %d, want 0", s.Level)
	}
	if s.Advance(false) != 0 {
		t.Fatal("level moved below 0")
	}
}

func TestLevelStaysInBounds(t *testing.T) {
	s := Stepper{Top: 255, Step: 2}
	asserted := false
	for i := 0; i < 1000; i++ {
		if i%7 == 0 {
			asserted = !asserted
		}
		lvl := s.Advance(asserted)
		if lvl > 255 {
			t.Fatalf("tick %d: level %d out of range", i, lvl)
		}
	}
}

func TestSeed(t *testing.T) {
	s := Stepper{Top: 255, Step: 2}
	if s.Seed(true) != 255 {
		t.Fatal("seed asserted: want 255")
	}
	if s.Seed(false) != 0 {
		t.Fatal("seed released: want 0")
	}
}
