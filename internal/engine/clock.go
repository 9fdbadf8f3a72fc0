// internal/engine/clock.go
package engine

import "time"

// systemClock implements Clock on the runtime's monotonic clock,
// truncated to 32 bits. It wraps roughly every 72 minutes; consumers
// compare with unsigned subtraction, so the wrap is harmless.
type systemClock struct {
	start time.Time
}

// NewSystemClock returns a Clock counting microseconds since creation.
func NewSystemClock() Clock {
	return &systemClock{start: time.Now()}
}

func (c *systemClock) Micros() uint32 {
	return uint32(time.Since(c.start).Microseconds())
}
