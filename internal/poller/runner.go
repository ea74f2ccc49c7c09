// internal/poller/runner.go
package poller

import (
	"context"
	"time"
)

// Run polls once immediately, then once per interval, emitting one
// Result per cycle on the provided channel. One goroutine per device.
// No overlap. A cancelled cycle emits nothing.
func (p *Poller) Run(ctx context.Context, out chan<- Result) {
	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for {
		snap, err := p.PollOnce(ctx)
		if ctx.Err() != nil {
			return
		}
		select {
		case out <- Result{At: time.Now(), Snapshot: snap, Err: err}:
		case <-ctx.Done():
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
