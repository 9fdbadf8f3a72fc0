// internal/engine/vendor.go
package engine

import (
	"bytes"

	"github.com/tamzrod/rotary-hid/internal/report"
)

// cycleReport runs one ModeReport transport cycle: drain every channel's
// accumulator (saturating), assemble the vendor report, and transmit only
// if there is movement or the report differs from the last one sent.
// Movement forces a send because the values are relative: an identical
// byte pattern two cycles in a row still means new motion. The difference
// check alone covers zero-movement button changes without retransmitting
// an unchanged idle report.
func (e *Engine) cycleReport() error {
	var r report.Vendor
	movement := false

	for i, c := range e.channels {
		mv := c.takeMovement()
		r.Movement[i] = mv
		if mv != 0 {
			movement = true
		}
		if c.btn != nil && c.btn.Pressed() {
			r.Buttons |= 1 << uint(i)
		}
	}

	buf := r.Encode()
	if !movement && bytes.Equal(buf, e.last[:]) {
		return nil
	}

	if err := e.tr.Send(buf); err != nil {
		return err
	}
	copy(e.last[:], buf)
	e.trace(Event{Kind: EventReport, Report: buf})
	return nil
}
