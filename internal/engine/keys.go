// internal/engine/keys.go
package engine

import "github.com/tamzrod/rotary-hid/internal/report"

// cycleKeys runs one ModeKeys transport cycle. Every keycode goes out as
// a down report followed by the all-keys-released report one cycle later,
// so a host never sees more than one key down at a time and never misses
// the release.
func (e *Engine) cycleKeys() error {
	switch e.phase {
	case keyIdle:
		if e.pending == 0 {
			return nil
		}
		var r report.Keyboard
		r.Keys[0] = e.pending
		buf := r.Encode()
		e.phase = keyDown
		if err := e.tr.Send(buf); err != nil {
			return err
		}
		e.trace(Event{Kind: EventReport, Key: e.pending, Report: buf})

	case keyDown:
		buf := report.Keyboard{}.Encode()
		e.pending = 0
		e.phase = keyUp
		if err := e.tr.Send(buf); err != nil {
			return err
		}
		e.trace(Event{Kind: EventReport, Report: buf})

	case keyUp:
		e.phase = keyIdle
	}
	return nil
}
