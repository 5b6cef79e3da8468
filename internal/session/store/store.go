// Package store persists session state between requests.
//
// Every backend stores the JSON encoding of models.State, so each Load hands
// the caller an independent copy that no concurrent request can observe.
package store

import (
	"context"
	"time"

	"todolists/internal/platform/metrics"
	"todolists/internal/session/models"
	"todolists/pkg/platform/sentinel"
)

// ErrNotFound is returned when no live session exists under an id.
var ErrNotFound = sentinel.ErrNotFound

// Store is implemented by every session backend.
type Store interface {
	Load(ctx context.Context, id string) (*models.State, error)
	Save(ctx context.Context, id string, state *models.State, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

// HealthChecker is implemented by backends with a remote dependency.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Option configures a store.
type Option func(*options)

type options struct {
	metrics *metrics.Metrics
}

// WithMetrics records operation latency.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
