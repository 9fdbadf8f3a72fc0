// internal/report/reports.go
package report

// ---- REPORT GEOMETRY ----

// Layout is protocol-locked: it must match the descriptors in
// descriptors.go byte for byte.

// KeyboardLen is the size of the boot keyboard input report.
const KeyboardLen = 8

// VendorLen is the size of the vendor report including its report ID.
const VendorLen = 8

// VendorReportID tags the vendor-defined report.
const VendorReportID = 1

// VendorChannels is the fixed number of movement slots in the vendor report.
const VendorChannels = 4

// MovementMin and MovementMax bound one movement byte. Accumulated detents
// beyond this range saturate; they never wrap.
const (
	MovementMin = -127
	MovementMax = 127
)

// Keyboard is the 8-byte boot keyboard input report:
// modifier, reserved, then up to six concurrent usage IDs.
type Keyboard struct {
	Modifier byte
	Keys     [6]byte
}

// Encode packs the report for the interrupt endpoint.
func (r Keyboard) Encode() []byte {
	buf := make([]byte, KeyboardLen)
	buf[0] = r.Modifier
	// buf[1] reserved
	copy(buf[2:], r.Keys[:])
	return buf
}

// Vendor is the vendor-defined report: one signed movement byte per
// channel (positive = clockwise) and a button bitmap (bit i = channel i
// pressed), followed by two reserved zero bytes.
type Vendor struct {
	Movement [VendorChannels]int8
	Buttons  byte
}

// Encode packs the report, report ID first.
func (r Vendor) Encode() []byte {
	buf := make([]byte, VendorLen)
	buf[0] = VendorReportID
	for i, mv := range r.Movement {
		buf[1+i] = byte(mv)
	}
	buf[5] = r.Buttons
	// buf[6], buf[7] reserved
	return buf
}

// Saturate clamps an accumulated detent count to one movement byte.
func Saturate(v int) int8 {
	if v > MovementMax {
		return MovementMax
	}
	if v < MovementMin {
		return MovementMin
	}
	return int8(v)
}
