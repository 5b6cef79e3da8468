package store

import (
	"context"
	"log/slog"
	"time"
)

// Purger is implemented by backends that must expire sessions themselves.
// Redis expires keys on its own and does not need one.
type Purger interface {
	PurgeExpired(ctx context.Context) (int, error)
}

// Janitor periodically purges expired sessions.
type Janitor struct {
	purger   Purger
	interval time.Duration
	logger   *slog.Logger
}

func NewJanitor(purger Purger, interval time.Duration, logger *slog.Logger) *Janitor {
	return &Janitor{purger: purger, interval: interval, logger: logger}
}

// Run purges on every tick until ctx is cancelled. Purge failures are logged
// and retried on the next tick.
func (j *Janitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			n, err := j.purger.PurgeExpired(ctx)
			if err != nil {
				j.logger.ErrorContext(ctx, "session purge failed", "error", err)
				continue
			}
			if n > 0 {
				j.logger.InfoContext(ctx, "purged expired sessions", "count", n)
			}
		}
	}
}
