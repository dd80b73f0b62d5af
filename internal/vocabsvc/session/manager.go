package session

import (
	"errors"
	"sync"
)

// ErrUnknownToken is returned when a token does not map to a live session,
// either because it never existed or the session was already removed.
var ErrUnknownToken = errors.New("session: unknown session token")

// Manager tracks live sessions by token. Sessions are ephemeral; an
// abandoned one just sits here until Remove (or process restart), no
// cleanup is owed beyond that.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Coordinator
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Coordinator)}
}

// Add registers a session under its token. The caller mints the token so
// it can thread it through the session's persistence before registering.
func (m *Manager) Add(token string, c *Coordinator) {
	m.mu.Lock()
	m.sessions[token] = c
	m.mu.Unlock()
}

// Get looks up a live session by token.
func (m *Manager) Get(token string) (*Coordinator, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.sessions[token]
	if !ok {
		return nil, ErrUnknownToken
	}
	return c, nil
}

// Remove drops a session. Removing an unknown token is a no-op.
func (m *Manager) Remove(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

// Active returns the number of live sessions.
func (m *Manager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
