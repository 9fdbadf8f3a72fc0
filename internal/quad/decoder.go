// internal/quad/decoder.go
package quad

// transitions maps (prev<<2 | curr) of the two-bit A/B position code to a
// rotation direction. +1 = clockwise step, -1 = counter-clockwise step,
// 0 = no change or an illegal double-bit jump (contact noise, skipped).
var transitions = [16]int8{
	0,  // 00 -> 00: no change
	+1, // 00 -> 01: CW
	-1, // 00 -> 10: CCW
	0,  // 00 -> 11: invalid (skip)
	-1, // 01 -> 00: CCW
	0,  // 01 -> 01: no change
	0,  // 01 -> 10: invalid (skip)
	+1, // 01 -> 11: CW
	+1, // 10 -> 00: CW
	0,  // 10 -> 01: invalid (skip)
	0,  // 10 -> 10: no change
	-1, // 10 -> 11: CCW
	0,  // 11 -> 00: invalid (skip)
	-1, // 11 -> 01: CCW
	+1, // 11 -> 10: CW
	0,  // 11 -> 11: no change
}

// DefaultStepsPerDetent is the gearing of the common EC11-class encoder:
// four raw state changes per mechanical click.
const DefaultStepsPerDetent = 4

// Decoder converts a stream of two-bit position codes into detents.
// One instance per channel. Geometry only: no timing, no IO.
type Decoder struct {
	prev      uint8
	steps     int8
	perDetent int8
}

// New creates a decoder seeded with the initial position code.
// stepsPerDetent <= 0 selects the default gearing.
func New(initial uint8, stepsPerDetent int) *Decoder {
	if stepsPerDetent <= 0 {
		stepsPerDetent = DefaultStepsPerDetent
	}
	return &Decoder{
		prev:      initial & 0x03,
		perDetent: int8(stepsPerDetent),
	}
}

// Update consumes one position code and returns +1 when a full clockwise
// detent completes, -1 for counter-clockwise, 0 otherwise. The previous
// code always advances, whether or not the transition was legal.
// At most one detent is emitted per call.
func (d *Decoder) Update(code uint8) int {
	code &= 0x03
	if code == d.prev {
		return 0
	}

	dir := transitions[d.prev<<2|code]
	d.prev = code
	if dir == 0 {
		return 0
	}

	d.steps += dir
	if d.steps >= d.perDetent {
		d.steps = 0
		return 1
	}
	if d.steps <= -d.perDetent {
		d.steps = 0
		return -1
	}
	return 0
}
