package session

import (
	"sync"

	"github.com/couchcryptid/stormwater-assessment/internal/domain"
)

// Session is one user's page state: the saved entries and the rated
// condition list. Both are only reachable through Do.
type Session struct {
	id         string
	mu         sync.Mutex
	entries    *domain.Store
	conditions *domain.ConditionList
}

func newSession(id string, cat *domain.Catalogue) *Session {
	return &Session{
		id:         id,
		entries:    domain.NewStore(),
		conditions: domain.NewConditionList(cat),
	}
}

// ID is the value carried in the session cookie.
func (s *Session) ID() string { return s.id }

// Do runs fn with exclusive access to the session state.
func (s *Session) Do(fn func(entries *domain.Store, conditions *domain.ConditionList)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.entries, s.conditions)
}
