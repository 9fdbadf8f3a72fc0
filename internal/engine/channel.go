// internal/engine/channel.go
package engine

import (
	"github.com/tamzrod/rotary-hid/internal/debounce"
	"github.com/tamzrod/rotary-hid/internal/quad"
	"github.com/tamzrod/rotary-hid/internal/report"
)

// channel owns the full decode state of one encoder. Channels are
// independent; nothing here is shared between them.
type channel struct {
	id  int
	cfg ChannelConfig
	dec *quad.Decoder
	btn *debounce.Debouncer

	// detents is the ModeReport accumulator. It counts whole detents
	// (one per click, distinct from the decoder's raw step counter) and
	// is unbounded between report cycles; saturation happens at read
	// time in takeMovement.
	detents int
}

// sample reads the current two-bit A/B position code.
func (c *channel) sample(pins PinSource) uint8 {
	var code uint8
	if pins.Level(c.cfg.PinA) {
		code |= 0x02
	}
	if pins.Level(c.cfg.PinB) {
		code |= 0x01
	}
	return code
}

// takeMovement drains the detent accumulator, saturated to one report
// byte. Clamp, never wrap: 130 pending detents read as 127.
func (c *channel) takeMovement() int8 {
	mv := report.Saturate(c.detents)
	c.detents = 0
	return mv
}
