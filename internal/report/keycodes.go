// internal/report/keycodes.go
package report

import (
	"fmt"
	"strings"
)

// USB HID usage IDs (keyboard/keypad page) for the function keys.
const (
	KeyF1  byte = 0x3A
	KeyF2  byte = 0x3B
	KeyF3  byte = 0x3C
	KeyF4  byte = 0x3D
	KeyF5  byte = 0x3E
	KeyF6  byte = 0x3F
	KeyF7  byte = 0x40
	KeyF8  byte = 0x41
	KeyF9  byte = 0x42
	KeyF10 byte = 0x43
	KeyF11 byte = 0x44
	KeyF12 byte = 0x45
	KeyF13 byte = 0x68
	KeyF14 byte = 0x69
	KeyF15 byte = 0x6A
	KeyF16 byte = 0x6B
	KeyF17 byte = 0x6C
	KeyF18 byte = 0x6D
	KeyF19 byte = 0x6E
	KeyF20 byte = 0x6F
	KeyF21 byte = 0x70
	KeyF22 byte = 0x71
	KeyF23 byte = 0x72
	KeyF24 byte = 0x73
)

var keycodeNames = map[string]byte{
	"f1": KeyF1, "f2": KeyF2, "f3": KeyF3, "f4": KeyF4,
	"f5": KeyF5, "f6": KeyF6, "f7": KeyF7, "f8": KeyF8,
	"f9": KeyF9, "f10": KeyF10, "f11": KeyF11, "f12": KeyF12,
	"f13": KeyF13, "f14": KeyF14, "f15": KeyF15, "f16": KeyF16,
	"f17": KeyF17, "f18": KeyF18, "f19": KeyF19, "f20": KeyF20,
	"f21": KeyF21, "f22": KeyF22, "f23": KeyF23, "f24": KeyF24,
}

// LookupKey resolves a configured key name ("F1", "f10") to its usage ID.
func LookupKey(name string) (byte, error) {
	code, ok := keycodeNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("report: unknown key name %q", name)
	}
	return code, nil
}

// DefaultKeyNames returns the stock key mapping (cw, ccw, button) for a
// channel index. The first four channels map rotation to F1-F8 pairs and
// buttons to F9-F12. Channels past that have no stock mapping and must be
// configured explicitly.
func DefaultKeyNames(channel int) (cw, ccw, button string, ok bool) {
	if channel < 0 || channel > 3 {
		return "", "", "", false
	}
	cw = fmt.Sprintf("F%d", channel*2+1)
	ccw = fmt.Sprintf("F%d", channel*2+2)
	button = fmt.Sprintf("F%d", channel+9)
	return cw, ccw, button, true
}
