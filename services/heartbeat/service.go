// Package heartbeat publishes a periodic liveness beat on the bus so a
// console or host tool can tell the firmware is still looping.
package heartbeat

import (
	"context"
	"time"

	"lightcup-go/bus"
)

var topicHeartbeat = bus.Topic{"telemetry", "heartbeat"}

// Beat is the published payload.
type Beat struct {
	UptimeS uint32 `json:"uptime_s"`
}

type Service struct {
	Interval time.Duration // default 1s
}

func (s *Service) serviceLoop(ctx context.Context, conn *bus.Connection) {
	interval := s.Interval
	if interval <= 0 {
		interval = time.Second
	}

	start := time.Now()
	tick := time.NewTicker(interval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case t := <-tick.C:
			conn.PublishRetained(topicHeartbeat, Beat{UptimeS: uint32(t.Sub(start) / time.Second)})
		}
	}
}

// Start the heartbeat service.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) error {
	go s.serviceLoop(ctx, conn)
	return nil
}
