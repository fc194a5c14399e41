package schedule

import (
	"context"
	"time"
)

// Every calls f immediately and then once per interval until ctx is
// canceled. f runs on the calling goroutine, so a slow f delays the next tick
// rather than overlapping it.
func Every(ctx context.Context, interval time.Duration, f func()) {
	t := time.NewTicker(interval)
	defer t.Stop()
	f()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			f()
		}
	}
}

// Until calls f on every tick like Every, stopping early once f reports true.
// It returns ctx.Err() when canceled and nil when f finished the loop.
func Until(ctx context.Context, interval time.Duration, f func() bool) error {
	t := time.NewTicker(interval)
	defer t.Stop()
	if f() {
		return nil
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if f() {
				return nil
			}
		}
	}
}
