// internal/engine/gpio/source.go
package gpio

import (
	"errors"
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// Source reads encoder lines through the GPIO character device.
// This adapter owns electrical polarity: every line is requested as a
// pulled-up input and the contact shorts it to ground, so a low level
// reads as asserted.
type Source struct {
	lines map[int]*gpiocdev.Line
}

// Config is minimal transport config.
type Config struct {
	Chip string // e.g. "gpiochip0"
	Pins []int  // every offset the engine will read
}

// New requests all configured lines. Fails fast on the first line that
// cannot be claimed.
func New(cfg Config) (*Source, error) {
	if cfg.Chip == "" {
		return nil, errors.New("gpio: chip required")
	}
	if len(cfg.Pins) == 0 {
		return nil, errors.New("gpio: at least one pin required")
	}

	s := &Source{lines: make(map[int]*gpiocdev.Line, len(cfg.Pins))}

	for _, pin := range cfg.Pins {
		if _, dup := s.lines[pin]; dup {
			s.Close()
			return nil, fmt.Errorf("gpio: pin %d requested twice", pin)
		}
		line, err := gpiocdev.RequestLine(cfg.Chip, pin,
			gpiocdev.AsInput,
			gpiocdev.WithPullUp)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("gpio: request line %d on %s: %w", pin, cfg.Chip, err)
		}
		s.lines[pin] = line
	}

	return s, nil
}

// Level implements engine.PinSource. An unknown pin or a failed read
// reports not-asserted; the decode pipeline treats that as noise.
func (s *Source) Level(pin int) bool {
	line := s.lines[pin]
	if line == nil {
		return false
	}
	v, err := line.Value()
	if err != nil {
		return false
	}
	return v == 0 // active-low
}

// Close releases all claimed lines.
func (s *Source) Close() error {
	for _, line := range s.lines {
		line.Close()
	}
	s.lines = nil
	return nil
}
