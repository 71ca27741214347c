package checkout

import (
	"sync"

	"k2demo/models"
)

// SessionStore is the process-wide in-memory session map. Sessions do not
// survive a restart.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.CheckoutSession
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*models.CheckoutSession)}
}

func (s *SessionStore) Get(id string) (*models.CheckoutSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	return session, ok
}

func (s *SessionStore) Put(session *models.CheckoutSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
}

func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
