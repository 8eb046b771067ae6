package types

// ------------------------
// Capability kinds & telemetry payloads
// ------------------------

type Kind string

const (
	KindTilt    Kind = "tilt"
	KindLED     Kind = "led"
	KindDisplay Kind = "display"
)

// TiltValue is published when a tilt switch changes logical state.
type TiltValue struct {
	Channel string `json:"channel"`
	Tilted  bool   `json:"tilted"`
}

// LEDValue reports the current logical brightness of one LED channel.
type LEDValue struct {
	Channel string `json:"channel"`
	Level   uint8  `json:"level"`
}
