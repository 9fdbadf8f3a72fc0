// internal/config/validate_test.go
package config

import "testing"

// helper to build a config quickly
func testConfig(mode string, nchan int) *Config {
	cfg := &Config{
		Device: DeviceConfig{Mode: mode},
	}
	for i := 0; i < nchan; i++ {
		btn := i*3 + 4
		cfg.Channels = append(cfg.Channels, ChannelConfig{
			PinA:      i*3 + 2,
			PinB:      i*3 + 3,
			PinButton: &btn,
		})
	}
	return cfg
}

// ---- tests ----

func TestValidate_DefaultsAccepted(t *testing.T) {
	for _, mode := range []string{"", ModeKeys, ModeReport} {
		if err := Validate(testConfig(mode, 4)); err != nil {
			t.Fatalf("mode %q: unexpected error: %v", mode, err)
		}
	}
}

func TestValidate_UnknownMode(t *testing.T) {
	if err := Validate(testConfig("gamepad", 1)); err == nil {
		t.Fatalf("expected unknown mode error, got nil")
	}
}

func TestValidate_NoChannels(t *testing.T) {
	if err := Validate(testConfig(ModeKeys, 0)); err == nil {
		t.Fatalf("expected missing channel error, got nil")
	}
}

func TestValidate_ReportModeChannelLimit(t *testing.T) {
	if err := Validate(testConfig(ModeReport, 4)); err != nil {
		t.Fatalf("four report channels rejected: %v", err)
	}
	if err := Validate(testConfig(ModeReport, 5)); err == nil {
		t.Fatalf("expected channel limit error, got nil")
	}
}

func TestValidate_PinCollision(t *testing.T) {
	cfg := testConfig(ModeKeys, 2)
	cfg.Channels[1].PinB = cfg.Channels[0].PinA

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected pin collision error, got nil")
	}
}

func TestValidate_ButtonPinCollision(t *testing.T) {
	cfg := testConfig(ModeKeys, 2)
	*cfg.Channels[1].PinButton = cfg.Channels[0].PinB

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected button pin collision error, got nil")
	}
}

func TestValidate_NegativePin(t *testing.T) {
	cfg := testConfig(ModeKeys, 1)
	cfg.Channels[0].PinA = -1

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected negative pin error, got nil")
	}
}

func TestValidate_BadKeyName(t *testing.T) {
	cfg := testConfig(ModeKeys, 1)
	cfg.Channels[0].Keys.CW = "escape"

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected key name error, got nil")
	}
}

func TestValidate_FifthChannelNeedsExplicitKeys(t *testing.T) {
	cfg := testConfig(ModeKeys, 5)
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected explicit key error for channel without a stock map")
	}

	cfg.Channels[4].Keys = KeysConfig{CW: "F13", CCW: "F14", Button: "F15"}
	if err := Validate(cfg); err != nil {
		t.Fatalf("explicit keys rejected: %v", err)
	}
}

func TestValidate_ReportModeIgnoresKeyNames(t *testing.T) {
	// Key names are not used in report mode; a bogus one is not an error.
	cfg := testConfig(ModeReport, 1)
	cfg.Channels[0].Keys.CW = "escape"

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
