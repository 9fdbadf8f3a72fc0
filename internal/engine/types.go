// internal/engine/types.go
package engine

// Mode selects the outward representation of decoded events.
type Mode uint8

const (
	// ModeKeys emits each detent or button press as a keyboard keycode,
	// sent as a down report followed by an all-zero up report.
	ModeKeys Mode = iota + 1

	// ModeReport emits a vendor-defined report carrying accumulated
	// signed movement per channel and a button bitmap.
	ModeReport
)

// PinSource supplies logical pin levels. Implementations own electrical
// polarity: true means asserted (contact closed against the pull-up).
type PinSource interface {
	Level(pin int) bool
}

// Clock is a monotonic microsecond counter. It is fixed-width and wraps;
// all comparisons against it use unsigned subtraction.
type Clock interface {
	Micros() uint32
}

// Transport is the exact contract the engine uses to reach the HID
// endpoint. Readiness is queried before every cycle's output; a cycle
// whose transport is not ready drops its output and is never retried
// within the cycle.
type Transport interface {
	Ready() bool
	Send(report []byte) error
}

// ChannelConfig is the runtime geometry of one encoder channel.
// PinButton < 0 disables the button line.
type ChannelConfig struct {
	PinA      int
	PinB      int
	PinButton int

	// Keycodes for ModeKeys. Unused in ModeReport.
	KeyCW     byte
	KeyCCW    byte
	KeyButton byte
}

// EventKind classifies a trace event.
type EventKind string

const (
	EventDetent   EventKind = "detent"
	EventPressed  EventKind = "pressed"
	EventReleased EventKind = "released"
	EventReport   EventKind = "report"
)

// Event is one decoded occurrence, emitted to the optional trace sink.
// Report events carry the raw bytes that went out on the wire.
type Event struct {
	Channel   int       `json:"channel,omitempty"`
	Kind      EventKind `json:"kind"`
	Direction int       `json:"direction,omitempty"`
	Key       byte      `json:"key,omitempty"`
	Report    []byte    `json:"report,omitempty"`
}
