// Package session provides the in-memory quote selection store. One slot per
// session, consume-once semantics, age-based eviction for abandoned flows.
package session

import (
	"sync"
	"time"

	"freightquote/internal/core/ports"
)

// InMemoryStore implements ports.QuoteSessionStore with a mutex-guarded map.
// Selections live in process memory only; a restart drops all pending
// selections, which is acceptable because the quote flow rebuilds them from
// a fresh rating call.
type InMemoryStore struct {
	mu    sync.Mutex
	slots map[string]ports.Selection
	now   func() time.Time
}

// NewInMemoryStore creates an empty session store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		slots: make(map[string]ports.Selection),
		now:   time.Now,
	}
}

// Put stores the selection for a session, replacing any previous one.
func (s *InMemoryStore) Put(sessionID string, selection ports.Selection) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots[sessionID] = selection
}

// Take returns the session's selection and clears the slot.
func (s *InMemoryStore) Take(sessionID string) (ports.Selection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	selection, ok := s.slots[sessionID]
	if ok {
		delete(s.slots, sessionID)
	}
	return selection, ok
}

// Sweep evicts selections stored longer ago than maxAge and returns how many
// were removed.
func (s *InMemoryStore) Sweep(maxAge time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxAge)
	removed := 0
	for sessionID, selection := range s.slots {
		if selection.StoredAt.Before(cutoff) {
			delete(s.slots, sessionID)
			removed++
		}
	}
	return removed
}

// Len returns the number of pending selections.
func (s *InMemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.slots)
}
