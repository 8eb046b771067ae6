package timex

import (
	"testing"
	"time"
)

func TestGateRateLimitsUnderFastPolling(t *testing.T) {
	start := time.Unix(0, 0)
	g := NewGate(5*time.Millisecond, start)

	fired := 0
	// Poll every 100µs for 50ms of simulated time.
	for i := 1; i <= 500; i++ {
		now := start.Add(time.Duration(i) * 100 * time.Microsecond)
		if g.Due(now) {
			fired++
		}
	}
	if fired != 10 {
		t.Fatalf("gate fired %d times in 50ms at 5ms interval, want 10", fired)
	}
}

func TestGateNotDueBeforeInterval(t *testing.T) {
	start := time.Unix(100, 0)
	g := NewGate(100*time.Millisecond, start)

	if g.Due(start.Add(99 * time.Millisecond)) {
		t.Fatal("gate fired before interval elapsed")
	}
	if !g.Due(start.Add(100 * time.Millisecond)) {
		t.Fatal("gate did not fire at interval")
	}
	if g.Due(start.Add(101 * time.Millisecond)) {
		t.Fatal("gate fired again 1ms after firing")
	}
}
