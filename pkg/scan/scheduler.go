package scan

import (
	"context"
	"time"

	"github.com/projectdiscovery/gologger"
)

// DefaultInterval is the pause between scan cycles.
const DefaultInterval = 60 * time.Second

// Scheduler runs the engine once at startup and then on a fixed
// interval until the context is cancelled. Failed cycles surface as
// empty results; the loop never terminates because of one.
type Scheduler struct {
	engine   *Engine
	interval time.Duration
}

// NewScheduler returns a Scheduler; intervals below 1ns fall back to
// DefaultInterval.
func NewScheduler(engine *Engine, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{engine: engine, interval: interval}
}

// Run blocks until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	gologger.Info().Msg("performing initial scan...")
	devices := s.engine.Scan(ctx)
	gologger.Info().Msgf("initial scan found %d devices", len(devices))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			devices := s.engine.Scan(ctx)
			gologger.Info().Msgf("scan found %d devices", len(devices))
		}
	}
}
