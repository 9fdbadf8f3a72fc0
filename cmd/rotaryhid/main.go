// cmd/rotaryhid/main.go
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/tamzrod/rotary-hid/internal/config"
	"github.com/tamzrod/rotary-hid/internal/engine"
	"github.com/tamzrod/rotary-hid/internal/hidg"
	"github.com/tamzrod/rotary-hid/internal/monitor"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: rotaryhid <config.yaml>")
	}

	cfgPath := os.Args[1]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}

	config.Normalize(cfg)

	// --------------------
	// Gadget provisioning (opt-in)
	// --------------------

	if cfg.Device.SetupGadget {
		gadget := hidg.KeysGadget()
		if cfg.Device.Mode == config.ModeReport {
			gadget = hidg.ReportGadget()
		}
		gadget.UDC = cfg.Device.UDC
		if err := gadget.Setup(hidg.ConfigFSRoot); err != nil {
			log.Fatalf("gadget setup failed: %v", err)
		}
		log.Printf("gadget provisioned: mode=%s", cfg.Device.Mode)
	}

	// --------------------
	// Event sinks (debug log + monitor)
	// --------------------

	var mon *monitor.Server
	if cfg.Monitor.Listen != "" {
		mon = monitor.New()
		if err := mon.Start(cfg.Monitor.Listen); err != nil {
			log.Fatalf("monitor start failed: %v", err)
		}
		defer mon.Close()
		log.Printf("monitor listening on %s", mon.Addr())
	}

	debug := cfg.Device.Debug
	sink := func(ev engine.Event) {
		if debug {
			switch ev.Kind {
			case engine.EventDetent:
				log.Printf("channel %d: detent %+d", ev.Channel, ev.Direction)
			case engine.EventPressed:
				log.Printf("channel %d: button pressed", ev.Channel)
			case engine.EventReleased:
				log.Printf("channel %d: button released", ev.Channel)
			case engine.EventReport:
				log.Printf("report sent: % x", ev.Report)
			}
		}
		if mon != nil {
			mon.Publish(ev)
		}
	}

	// --------------------
	// Build + run the pipeline
	// --------------------

	eng, closer, err := engine.Build(cfg, sink)
	if err != nil {
		log.Fatalf("engine build failed: %v", err)
	}
	defer closer()

	log.Printf("rotary-hid running: mode=%s channels=%d gadget=%s",
		cfg.Device.Mode, len(cfg.Channels), cfg.Device.Gadget)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := eng.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("engine stopped: %v", err)
	}
}
