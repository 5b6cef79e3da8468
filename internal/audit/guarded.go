package audit

import (
	"context"
	"log/slog"
	"time"

	"todolists/internal/platform/metrics"
	"todolists/pkg/platform/circuit"
)

// GuardedStore stops calling a failing store while its breaker is open.
// Skipped events are counted as dropped; the breaker lets one trial
// call through per retry interval.
type GuardedStore struct {
	store   Store
	breaker *circuit.Breaker
	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewGuardedStore(store Store, breaker *circuit.Breaker, logger *slog.Logger, m *metrics.Metrics) *GuardedStore {
	return &GuardedStore{
		store:   store,
		breaker: breaker,
		logger:  logger,
		metrics: m,
		now:     time.Now,
	}
}

func (g *GuardedStore) Append(ctx context.Context, event Event) error {
	if !g.breaker.Allow(g.now()) {
		g.metrics.IncrementAuditDropped()
		return nil
	}
	if err := g.store.Append(ctx, event); err != nil {
		if _, change := g.breaker.RecordFailure(); change.Opened {
			g.logger.WarnContext(ctx, "audit sink circuit opened",
				"sink", g.breaker.Name(),
				"error", err,
			)
		}
		return err
	}
	if _, change := g.breaker.RecordSuccess(); change.Closed {
		g.logger.InfoContext(ctx, "audit sink circuit closed", "sink", g.breaker.Name())
	}
	return nil
}
