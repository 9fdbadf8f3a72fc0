// internal/engine/runner.go
package engine

import (
	"context"
	"log"
	"time"
)

// Run steps the engine at the sample cadence until ctx is done.
// Single goroutine. Transport write failures are logged, not fatal: the
// affected cycle's output is dropped and stepping continues.
func (e *Engine) Run(ctx context.Context) error {
	interval := time.Duration(e.cfg.SampleIntervalMicros) * time.Microsecond
	if interval <= 0 {
		interval = time.Millisecond
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := e.Step(); err != nil {
				log.Printf("engine: send failed: %v", err)
			}
		}
	}
}
