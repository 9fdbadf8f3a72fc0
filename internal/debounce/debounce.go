// internal/debounce/debounce.go
package debounce

// Edge is the outcome of one debounce update.
type Edge int8

const (
	None Edge = iota
	Pressed
	Released
)

// DefaultWindowMicros is the minimum time between accepted transitions.
const DefaultWindowMicros = 20000 // 20 ms

// Debouncer cleans one mechanical button line.
//
// A raw transition is accepted only when the debounce window has elapsed
// since the last ACCEPTED transition. A rejected transition mutates
// nothing: the stored level and timestamp are retained, so a later
// transition must still clear the original window. The window is never
// restarted by a bounce.
type Debouncer struct {
	level        bool // debounced logical level, true = asserted
	pressed      bool
	lastAccepted uint32
	window       uint32
}

// New creates a debouncer seeded with the initial raw level at time now.
// windowMicros <= 0 selects the default window.
func New(initial bool, now uint32, windowMicros int) *Debouncer {
	if windowMicros <= 0 {
		windowMicros = DefaultWindowMicros
	}
	return &Debouncer{
		level:        initial,
		lastAccepted: now,
		window:       uint32(windowMicros),
	}
}

// Update consumes one raw level sample. now is a monotonic microsecond
// counter; the subtraction is unsigned so counter wraparound is harmless.
func (b *Debouncer) Update(raw bool, now uint32) Edge {
	if raw == b.level {
		return None
	}
	if now-b.lastAccepted < b.window {
		// Bounce: reject and retain.
		return None
	}

	b.lastAccepted = now
	b.level = raw

	if raw && !b.pressed {
		b.pressed = true
		return Pressed
	}
	if !raw && b.pressed {
		b.pressed = false
		return Released
	}
	return None
}

// Pressed reports whether the line is currently in the pressed state.
func (b *Debouncer) Pressed() bool {
	return b.pressed
}
