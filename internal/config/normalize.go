// internal/config/normalize.go
package config

import "github.com/tamzrod/rotary-hid/internal/report"

// Defaults match the reference firmware: 1 ms fast loop, 10 ms transport
// cycle, 20 ms debounce, four raw steps per detent.
const (
	DefaultGadget           = "/dev/hidg0"
	DefaultChip             = "gpiochip0"
	DefaultSampleIntervalUs = 1000
	DefaultReportIntervalUs = 10000
	DefaultDebounceUs       = 20000
	DefaultStepsPerDetent   = 4
)

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	d := &cfg.Device

	if d.Mode == "" {
		d.Mode = ModeKeys
	}
	if d.Gadget == "" {
		d.Gadget = DefaultGadget
	}
	if d.Chip == "" {
		d.Chip = DefaultChip
	}
	if d.SampleIntervalUs == 0 {
		d.SampleIntervalUs = DefaultSampleIntervalUs
	}
	if d.ReportIntervalUs == 0 {
		d.ReportIntervalUs = DefaultReportIntervalUs
	}
	if d.DebounceUs == 0 {
		d.DebounceUs = DefaultDebounceUs
	}
	if d.StepsPerDetent == 0 {
		d.StepsPerDetent = DefaultStepsPerDetent
	}

	// Fill unset key names from the stock firmware map (F1-F8 rotation,
	// F9-F12 buttons). Validate has already required explicit names for
	// channels past the stock map.
	for i := range cfg.Channels {
		ch := &cfg.Channels[i]
		cw, ccw, button, ok := report.DefaultKeyNames(i)
		if !ok {
			continue
		}
		if ch.Keys.CW == "" {
			ch.Keys.CW = cw
		}
		if ch.Keys.CCW == "" {
			ch.Keys.CCW = ccw
		}
		if ch.Keys.Button == "" {
			ch.Keys.Button = button
		}
	}
}
