package service

import (
	"sync"

	"github.com/hanafi-dev/sentra-portal-api/internal/models"
)

// Session tracks the active portal user for this process. It is created at
// startup, cleared on logout, and shared by reference with every action that
// needs to know who is acting.
type Session struct {
	mu   sync.RWMutex
	user *models.User
}

// NewSession returns an unauthenticated session.
func NewSession() *Session {
	return &Session{}
}

// Set marks the given user as the active session user.
func (s *Session) Set(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
}

// Clear returns the session to its unauthenticated state.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

// Current returns the active user, if any.
func (s *Session) Current() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}
