package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"todolists/internal/platform/metrics"
	"todolists/internal/session/models"
	"todolists/pkg/platform/sentinel"
)

const (
	backendRedis = "redis"

	// Redis key prefix for session payloads
	sessionKeyPrefix = "todolists:session:"
)

// RedisStore shares sessions between instances through Redis. Expiry is
// delegated to Redis key TTLs.
type RedisStore struct {
	client  *redis.Client
	metrics *metrics.Metrics
}

// NewRedis constructs a Redis-backed store. The client lifecycle is managed
// by the caller.
func NewRedis(client *redis.Client, opts ...Option) *RedisStore {
	o := applyOptions(opts)
	return &RedisStore{client: client, metrics: o.metrics}
}

func (s *RedisStore) Load(ctx context.Context, id string) (*models.State, error) {
	defer s.metrics.ObserveSessionStore(backendRedis, "load", time.Now())

	data, err := s.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w: %w", sentinel.ErrUnavailable, err)
	}
	state, err := models.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", sentinel.ErrCorrupt, err)
	}
	return state, nil
}

// Save writes the session with SET ... EX so the payload and its expiry are
// updated atomically.
func (s *RedisStore) Save(ctx context.Context, id string, state *models.State, ttl time.Duration) error {
	defer s.metrics.ObserveSessionStore(backendRedis, "save", time.Now())

	data, err := models.Encode(state)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, sessionKeyPrefix+id, data, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w: %w", sentinel.ErrUnavailable, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("delete session: %w: %w", sentinel.ErrUnavailable, err)
	}
	return nil
}

func (s *RedisStore) Health(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
