// internal/engine/engine.go
package engine

import (
	"errors"
	"fmt"

	"github.com/tamzrod/rotary-hid/internal/debounce"
	"github.com/tamzrod/rotary-hid/internal/quad"
	"github.com/tamzrod/rotary-hid/internal/report"
)

// Config is the minimal runtime config the engine needs.
type Config struct {
	Mode     Mode
	Channels []ChannelConfig

	// ReportIntervalMicros is the cadence of transport cycles.
	// SampleIntervalMicros is the cadence at which Run calls Step; Step
	// itself samples every call.
	ReportIntervalMicros uint32
	SampleIntervalMicros uint32

	// DebounceWindowMicros <= 0 and StepsPerDetent <= 0 select defaults.
	DebounceWindowMicros int
	StepsPerDetent       int

	// OnEvent, when non-nil, receives a trace of detents, button edges
	// and transmitted reports. Called synchronously from Step.
	OnEvent func(Event)
}

// keyPhase is the ModeKeys transmit state machine.
type keyPhase uint8

const (
	keyIdle keyPhase = iota
	keyDown
	keyUp
)

// Engine runs the decode pipeline for all channels and drives the
// transport. Single-goroutine: Step must not be called concurrently.
type Engine struct {
	cfg   Config
	pins  PinSource
	clock Clock
	tr    Transport

	channels []*channel

	// ModeKeys state. pending is the single outward keycode slot shared
	// by all channels: the next event overwrites it, never queues behind
	// it. Channels are polled in index order, so when several channels
	// fire in one pass the highest index wins.
	pending byte
	phase   keyPhase

	// ModeReport state: the last transmitted report, for de-duplication.
	last [report.VendorLen]byte

	// lastCycle is the transport cycle deadline. It advances by the
	// fixed interval, never resets from now, so cadence does not drift.
	lastCycle uint32
}

// New creates an engine and seeds every channel from an initial pin
// sample, so a stable idle line produces no startup events.
func New(cfg Config, pins PinSource, clock Clock, tr Transport) (*Engine, error) {
	if cfg.Mode != ModeKeys && cfg.Mode != ModeReport {
		return nil, errors.New("engine: mode must be keys or report")
	}
	if len(cfg.Channels) == 0 {
		return nil, errors.New("engine: at least one channel required")
	}
	if cfg.Mode == ModeReport && len(cfg.Channels) > report.VendorChannels {
		return nil, fmt.Errorf("engine: report mode carries at most %d channels", report.VendorChannels)
	}
	if cfg.ReportIntervalMicros == 0 {
		return nil, errors.New("engine: report interval must be > 0")
	}
	if pins == nil || clock == nil || tr == nil {
		return nil, errors.New("engine: pin source, clock and transport required")
	}

	e := &Engine{
		cfg:   cfg,
		pins:  pins,
		clock: clock,
		tr:    tr,
	}

	now := clock.Micros()
	e.lastCycle = now

	// Seed the de-duplication state with the encoded idle report so an
	// idle device stays silent from the first cycle.
	if cfg.Mode == ModeReport {
		copy(e.last[:], report.Vendor{}.Encode())
	}

	for i, cc := range cfg.Channels {
		c := &channel{id: i, cfg: cc}
		c.dec = quad.New(c.sample(pins), cfg.StepsPerDetent)
		if cc.PinButton >= 0 {
			c.btn = debounce.New(pins.Level(cc.PinButton), now, cfg.DebounceWindowMicros)
		}
		e.channels = append(e.channels, c)
	}

	return e, nil
}

// Step performs one pass: sample and decode every channel, then run a
// transport cycle if the report interval has elapsed. The returned error
// is a failed transport write; engine state has already advanced and the
// caller may keep stepping.
func (e *Engine) Step() error {
	now := e.clock.Micros()
	e.poll(now)

	if now-e.lastCycle < e.cfg.ReportIntervalMicros {
		return nil
	}
	e.lastCycle += e.cfg.ReportIntervalMicros

	// Not ready: this cycle's output is dropped. Pending keycodes may be
	// overwritten before ever draining; report movement stays in the
	// accumulators until a ready cycle.
	if !e.tr.Ready() {
		return nil
	}

	if e.cfg.Mode == ModeKeys {
		return e.cycleKeys()
	}
	return e.cycleReport()
}

// poll decodes all channels in fixed index order.
func (e *Engine) poll(now uint32) {
	for _, c := range e.channels {
		if dir := c.dec.Update(c.sample(e.pins)); dir != 0 {
			e.onDetent(c, dir)
		}
		if c.btn == nil {
			continue
		}
		switch c.btn.Update(e.pins.Level(c.cfg.PinButton), now) {
		case debounce.Pressed:
			e.onPressed(c)
		case debounce.Released:
			// Tracked for edge detection only; no outward event.
			e.trace(Event{Channel: c.id, Kind: EventReleased})
		}
	}
}

func (e *Engine) onDetent(c *channel, dir int) {
	key := c.cfg.KeyCW
	if dir < 0 {
		key = c.cfg.KeyCCW
	}
	e.trace(Event{Channel: c.id, Kind: EventDetent, Direction: dir, Key: key})

	switch e.cfg.Mode {
	case ModeKeys:
		e.pending = key
	case ModeReport:
		c.detents += dir
	}
}

func (e *Engine) onPressed(c *channel) {
	e.trace(Event{Channel: c.id, Kind: EventPressed, Key: c.cfg.KeyButton})

	// ModeReport reads the pressed flag at report assembly; only
	// ModeKeys turns the edge into an outward event.
	if e.cfg.Mode == ModeKeys {
		e.pending = c.cfg.KeyButton
	}
}

func (e *Engine) trace(ev Event) {
	if e.cfg.OnEvent != nil {
		e.cfg.OnEvent(ev)
	}
}
