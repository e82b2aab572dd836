// Package state keeps all per-user transient conversation state:
// form sessions, consent flags and support-waiting flags. Everything
// here is process-lifetime only and starts empty.
package state

import (
	"sync"

	"github.com/drigmma/zabugorn/internal/domain"
)

// Store is a keyed in-memory state service. Distinct users never
// contend; events for one user are serialized through UserLock.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]*domain.Session
	consent  map[int64]bool
	support  map[int64]struct{}

	lockMu sync.Mutex
	locks  map[int64]*sync.Mutex
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		sessions: make(map[int64]*domain.Session),
		consent:  make(map[int64]bool),
		support:  make(map[int64]struct{}),
		locks:    make(map[int64]*sync.Mutex),
	}
}

// UserLock returns the mutex serializing all event handling for userID
func (s *Store) UserLock(userID int64) *sync.Mutex {
	s.lockMu.Lock()
	defer s.lockMu.Unlock()

	lock, exists := s.locks[userID]
	if !exists {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}

// Session returns the user's active session, or nil
func (s *Store) Session(userID int64) *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[userID]
}

// SetSession stores the user's session
func (s *Store) SetSession(userID int64, sess *domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = sess
}

// ClearSession destroys the user's session
func (s *Store) ClearSession(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// Consent reports whether the user accepted the privacy notice
func (s *Store) Consent(userID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.consent[userID]
}

// SetConsent records the user's privacy notice answer
func (s *Store) SetConsent(userID int64, accepted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.consent[userID] = accepted
}

// SetSupportWaiting marks the user's next free-text message for the
// support relay
func (s *Store) SetSupportWaiting(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.support[userID] = struct{}{}
}

// TakeSupportWaiting checks and clears the support flag in one step
func (s *Store) TakeSupportWaiting(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, waiting := s.support[userID]
	if waiting {
		delete(s.support, userID)
	}
	return waiting
}
