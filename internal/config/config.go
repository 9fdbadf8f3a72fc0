// internal/config/config.go
package config

type Config struct {
	Device   DeviceConfig    `yaml:"device"`
	Channels []ChannelConfig `yaml:"channels"`
	Monitor  MonitorConfig   `yaml:"monitor"`
}

// ---- DEVICE ----

type DeviceConfig struct {
	Mode   string `yaml:"mode"`   // "keys" or "report"
	Gadget string `yaml:"gadget"` // HID gadget device node
	Chip   string `yaml:"chip"`   // GPIO character device

	// Gadget provisioning (optional, opt-in)
	SetupGadget bool   `yaml:"setup_gadget"`
	UDC         string `yaml:"udc"`

	SampleIntervalUs int `yaml:"sample_interval_us"`
	ReportIntervalUs int `yaml:"report_interval_us"`
	DebounceUs       int `yaml:"debounce_us"`
	StepsPerDetent   int `yaml:"steps_per_detent"`

	Debug bool `yaml:"debug"`
}

// ---- CHANNEL ----

type ChannelConfig struct {
	PinA      int  `yaml:"a_pin"`
	PinB      int  `yaml:"b_pin"`
	PinButton *int `yaml:"button_pin"` // optional; nil = no button line

	Keys KeysConfig `yaml:"keys"`
}

// KeysConfig names the keycodes a channel emits in keys mode.
type KeysConfig struct {
	CW     string `yaml:"cw"`
	CCW    string `yaml:"ccw"`
	Button string `yaml:"button"`
}

// ---- MONITOR ----

type MonitorConfig struct {
	Listen string `yaml:"listen"` // empty = monitor disabled
}
