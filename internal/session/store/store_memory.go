package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"todolists/internal/platform/metrics"
	"todolists/internal/session/models"
	"todolists/pkg/platform/sentinel"
	"todolists/pkg/requestcontext"
)

const backendMemory = "memory"

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// InMemoryStore keeps sessions in process memory. Sessions are lost on
// restart and are not shared between instances.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	metrics  *metrics.Metrics
}

func NewInMemory(opts ...Option) *InMemoryStore {
	o := applyOptions(opts)
	return &InMemoryStore{
		sessions: make(map[string]memoryEntry),
		metrics:  o.metrics,
	}
}

func (s *InMemoryStore) Load(ctx context.Context, id string) (*models.State, error) {
	defer s.metrics.ObserveSessionStore(backendMemory, "load", time.Now())

	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok || !entry.expiresAt.After(requestcontext.Now(ctx)) {
		return nil, ErrNotFound
	}
	state, err := models.Decode(entry.data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", sentinel.ErrCorrupt, err)
	}
	return state, nil
}

func (s *InMemoryStore) Save(ctx context.Context, id string, state *models.State, ttl time.Duration) error {
	defer s.metrics.ObserveSessionStore(backendMemory, "save", time.Now())

	data, err := models.Encode(state)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = memoryEntry{data: data, expiresAt: requestcontext.Now(ctx).Add(ttl)}
	return nil
}

func (s *InMemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// PurgeExpired drops sessions whose TTL has elapsed and returns how many
// were removed.
func (s *InMemoryStore) PurgeExpired(ctx context.Context) (int, error) {
	now := requestcontext.Now(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, entry := range s.sessions {
		if !entry.expiresAt.After(now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed, nil
}
