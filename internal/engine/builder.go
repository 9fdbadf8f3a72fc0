// internal/engine/builder.go
package engine

import (
	"fmt"

	"github.com/tamzrod/rotary-hid/internal/config"
	"github.com/tamzrod/rotary-hid/internal/engine/gpio"
	"github.com/tamzrod/rotary-hid/internal/hidg"
	"github.com/tamzrod/rotary-hid/internal/report"
)

// Build constructs an Engine wired to the GPIO character device and the
// HID gadget node, and returns a closer for both. Fail fast at startup:
// a line or device that cannot be claimed is a config problem, not a
// runtime one.
func Build(cfg *config.Config, onEvent func(Event)) (*Engine, func() error, error) {
	mode := ModeKeys
	if cfg.Device.Mode == config.ModeReport {
		mode = ModeReport
	}

	channels := make([]ChannelConfig, 0, len(cfg.Channels))
	pins := make([]int, 0, len(cfg.Channels)*3)

	for i, ch := range cfg.Channels {
		cc := ChannelConfig{
			PinA:      ch.PinA,
			PinB:      ch.PinB,
			PinButton: -1,
		}
		pins = append(pins, ch.PinA, ch.PinB)
		if ch.PinButton != nil {
			cc.PinButton = *ch.PinButton
			pins = append(pins, *ch.PinButton)
		}

		if mode == ModeKeys {
			var err error
			if cc.KeyCW, err = report.LookupKey(ch.Keys.CW); err != nil {
				return nil, nil, fmt.Errorf("engine: channel %d: %w", i, err)
			}
			if cc.KeyCCW, err = report.LookupKey(ch.Keys.CCW); err != nil {
				return nil, nil, fmt.Errorf("engine: channel %d: %w", i, err)
			}
			if cc.PinButton >= 0 {
				if cc.KeyButton, err = report.LookupKey(ch.Keys.Button); err != nil {
					return nil, nil, fmt.Errorf("engine: channel %d: %w", i, err)
				}
			}
		}

		channels = append(channels, cc)
	}

	source, err := gpio.New(gpio.Config{Chip: cfg.Device.Chip, Pins: pins})
	if err != nil {
		return nil, nil, err
	}

	transport, err := hidg.Open(cfg.Device.Gadget)
	if err != nil {
		source.Close()
		return nil, nil, err
	}

	closer := func() error {
		source.Close()
		return transport.Close()
	}

	eng, err := New(Config{
		Mode:                 mode,
		Channels:             channels,
		ReportIntervalMicros: uint32(cfg.Device.ReportIntervalUs),
		SampleIntervalMicros: uint32(cfg.Device.SampleIntervalUs),
		DebounceWindowMicros: cfg.Device.DebounceUs,
		StepsPerDetent:       cfg.Device.StepsPerDetent,
		OnEvent:              onEvent,
	}, source, NewSystemClock(), transport)
	if err != nil {
		closer()
		return nil, nil, err
	}

	return eng, closer, nil
}
