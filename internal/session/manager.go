package session

import (
	"sync"

	"github.com/google/uuid"
)

// Manager is the registry of live sessions for the HTTP surface. Each bearer
// token maps to one Controller; logout removes the entry, which invalidates
// the token even if it has not expired yet.
type Manager struct {
	auth  AuthService
	cards CardService

	mu       sync.Mutex
	sessions map[uuid.UUID]*Controller
}

func NewManager(auth AuthService, cards CardService) *Manager {
	return &Manager{
		auth:     auth,
		cards:    cards,
		sessions: make(map[uuid.UUID]*Controller),
	}
}

// Create registers a fresh logged-out controller and returns its id.
func (m *Manager) Create() (uuid.UUID, *Controller) {
	controller := NewController(m.auth, m.cards)
	id := uuid.New()

	m.mu.Lock()
	m.sessions[id] = controller
	m.mu.Unlock()

	return id, controller
}

// Get resolves a session id to its controller.
func (m *Manager) Get(id uuid.UUID) (*Controller, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	controller, ok := m.sessions[id]
	return controller, ok
}

// Remove drops the session. Removing an unknown id is a no-op.
func (m *Manager) Remove(id uuid.UUID) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}
