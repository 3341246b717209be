package auth

import (
	"sync"

	"blognews-service/model"

	"github.com/google/uuid"
)

// SessionManager maps bearer tokens to logged-in users, in memory only.
// All sessions die with the process.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]model.User
}

func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[string]model.User)}
}

func (m *SessionManager) Create(user model.User) string {
	token := uuid.NewString()
	m.mu.Lock()
	m.sessions[token] = user
	m.mu.Unlock()
	return token
}

func (m *SessionManager) Get(token string) (model.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.sessions[token]
	return user, ok
}

func (m *SessionManager) Destroy(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}
