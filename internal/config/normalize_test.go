// internal/config/normalize_test.go
package config

import "testing"

func TestNormalize_FillsDefaults(t *testing.T) {
	cfg := testConfig("", 1)
	Normalize(cfg)

	d := cfg.Device
	if d.Mode != ModeKeys {
		t.Fatalf("default mode = %q, want %q", d.Mode, ModeKeys)
	}
	if d.Gadget != DefaultGadget || d.Chip != DefaultChip {
		t.Fatalf("default devices = %q/%q", d.Gadget, d.Chip)
	}
	if d.SampleIntervalUs != DefaultSampleIntervalUs ||
		d.ReportIntervalUs != DefaultReportIntervalUs ||
		d.DebounceUs != DefaultDebounceUs ||
		d.StepsPerDetent != DefaultStepsPerDetent {
		t.Fatalf("default timings = %+v", d)
	}
}

func TestNormalize_StockKeyMap(t *testing.T) {
	cfg := testConfig(ModeKeys, 4)
	Normalize(cfg)

	wantCW := []string{"F1", "F3", "F5", "F7"}
	wantBtn := []string{"F9", "F10", "F11", "F12"}
	for i, ch := range cfg.Channels {
		if ch.Keys.CW != wantCW[i] || ch.Keys.Button != wantBtn[i] {
			t.Fatalf("channel %d keys = %+v", i, ch.Keys)
		}
	}
}

func TestNormalize_ExplicitValuesRetained(t *testing.T) {
	cfg := testConfig(ModeKeys, 1)
	cfg.Device.ReportIntervalUs = 5000
	cfg.Channels[0].Keys.CW = "F20"
	Normalize(cfg)

	if cfg.Device.ReportIntervalUs != 5000 {
		t.Fatalf("explicit interval overwritten: %d", cfg.Device.ReportIntervalUs)
	}
	if cfg.Channels[0].Keys.CW != "F20" {
		t.Fatalf("explicit key overwritten: %q", cfg.Channels[0].Keys.CW)
	}
	if cfg.Channels[0].Keys.CCW != "F2" {
		t.Fatalf("unset key not filled: %q", cfg.Channels[0].Keys.CCW)
	}
}

func TestNormalize_NilConfig(t *testing.T) {
	Normalize(nil) // must not panic
}
