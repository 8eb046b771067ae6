package heartbeat

import (
	"context"
	"testing"
	"time"

	"lightcup-go/bus"
)

func TestHeartbeatPublishes(t *testing.T) {
	b := bus.New(4)
	sub := b.Connect().Subscribe(bus.Topic{"telemetry", "heartbeat"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := &Service{Interval: 5 * time.Millisecond}
	if err := s.Start(ctx, b.Connect()); err != nil {
		t.Fatalf("Start error: %v", err)
	}

	select {
	case m := <-sub.Channel():
		if _, ok := m.Payload.(Beat); !ok {
			t.Fatalf("payload %T, want Beat", m.Payload)
		}
	case <-time.After(time.Second):
		t.Fatal("no heartbeat within 1s")
	}
}
