// internal/config/validate.go
package config

import (
	"fmt"

	"github.com/tamzrod/rotary-hid/internal/report"
)

// ModeKeys and ModeReport are the accepted device.mode values.
const (
	ModeKeys   = "keys"
	ModeReport = "report"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	switch cfg.Device.Mode {
	case "", ModeKeys, ModeReport:
		// empty selects the default in Normalize
	default:
		return fmt.Errorf("config: unknown mode %q (want %q or %q)",
			cfg.Device.Mode, ModeKeys, ModeReport)
	}

	if len(cfg.Channels) == 0 {
		return fmt.Errorf("config: at least one channel required")
	}
	if cfg.Device.Mode == ModeReport && len(cfg.Channels) > report.VendorChannels {
		return fmt.Errorf("config: report mode carries at most %d channels, got %d",
			report.VendorChannels, len(cfg.Channels))
	}

	if cfg.Device.SampleIntervalUs < 0 {
		return fmt.Errorf("config: sample_interval_us must be >= 0")
	}
	if cfg.Device.ReportIntervalUs < 0 {
		return fmt.Errorf("config: report_interval_us must be >= 0")
	}
	if cfg.Device.DebounceUs < 0 {
		return fmt.Errorf("config: debounce_us must be >= 0")
	}
	if cfg.Device.StepsPerDetent < 0 {
		return fmt.Errorf("config: steps_per_detent must be >= 0")
	}

	// ------------------------------------------------------------
	// PIN GEOMETRY VALIDATION
	// ------------------------------------------------------------

	// key = GPIO offset, value = "channel i a_pin" style owner
	owner := make(map[int]string)

	claim := func(pin int, who string) error {
		if pin < 0 {
			return fmt.Errorf("config: %s: negative pin %d", who, pin)
		}
		if prev, exists := owner[pin]; exists {
			return fmt.Errorf("config: pin collision: %d claimed by %s and %s", pin, prev, who)
		}
		owner[pin] = who
		return nil
	}

	for i, ch := range cfg.Channels {
		if err := claim(ch.PinA, fmt.Sprintf("channel %d a_pin", i)); err != nil {
			return err
		}
		if err := claim(ch.PinB, fmt.Sprintf("channel %d b_pin", i)); err != nil {
			return err
		}
		if ch.PinButton != nil {
			if err := claim(*ch.PinButton, fmt.Sprintf("channel %d button_pin", i)); err != nil {
				return err
			}
		}
	}

	// ------------------------------------------------------------
	// KEY MAP VALIDATION (keys mode only)
	// ------------------------------------------------------------

	if cfg.Device.Mode == ModeReport {
		return nil
	}

	for i, ch := range cfg.Channels {
		names := []string{ch.Keys.CW, ch.Keys.CCW, ch.Keys.Button}
		for _, name := range names {
			if name == "" {
				continue // filled from the stock map in Normalize
			}
			if _, err := report.LookupKey(name); err != nil {
				return fmt.Errorf("config: channel %d: %w", i, err)
			}
		}

		// Channels past the stock map must be fully explicit.
		if _, _, _, ok := report.DefaultKeyNames(i); ok {
			continue
		}
		if ch.Keys.CW == "" || ch.Keys.CCW == "" {
			return fmt.Errorf("config: channel %d has no stock key map; cw and ccw must be set", i)
		}
		if ch.PinButton != nil && ch.Keys.Button == "" {
			return fmt.Errorf("config: channel %d has no stock key map; button must be set", i)
		}
	}

	return nil
}
