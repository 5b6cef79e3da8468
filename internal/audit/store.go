package audit

import (
	"context"
	"errors"
	"sync"
)

// DefaultMemoryCapacity is the number of events an InMemoryStore keeps when
// no capacity is given.
const DefaultMemoryCapacity = 1000

// Store persists audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
}

// InMemoryStore keeps the most recent events in a fixed-size ring. Once
// full, each append overwrites the oldest event.
type InMemoryStore struct {
	mu     sync.RWMutex
	events []Event
	next   int
	full   bool
}

func NewInMemoryStore(capacity int) *InMemoryStore {
	if capacity <= 0 {
		capacity = DefaultMemoryCapacity
	}
	return &InMemoryStore{events: make([]Event, capacity)}
}

func (s *InMemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[s.next] = event
	s.next = (s.next + 1) % len(s.events)
	if s.next == 0 {
		s.full = true
	}
	return nil
}

// Len is the number of retained events.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.full {
		return len(s.events)
	}
	return s.next
}

// ListBySession returns the retained events of one session, oldest first.
func (s *InMemoryStore) ListBySession(_ context.Context, sessionID string) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Event
	for _, e := range s.ordered() {
		if e.SessionID == sessionID {
			out = append(out, e)
		}
	}
	return out, nil
}

// ListRecent returns up to n of the newest events, oldest first.
func (s *InMemoryStore) ListRecent(_ context.Context, n int) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := s.ordered()
	if n < 0 {
		n = 0
	}
	if n < len(all) {
		all = all[len(all)-n:]
	}
	return all, nil
}

// ordered copies the ring oldest first. Callers hold the lock.
func (s *InMemoryStore) ordered() []Event {
	if !s.full {
		return append([]Event{}, s.events[:s.next]...)
	}
	out := make([]Event, 0, len(s.events))
	out = append(out, s.events[s.next:]...)
	return append(out, s.events[:s.next]...)
}

// MultiStore appends to every store and joins their errors.
type MultiStore []Store

func (m MultiStore) Append(ctx context.Context, event Event) error {
	var errs []error
	for _, s := range m {
		if err := s.Append(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
