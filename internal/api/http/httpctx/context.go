// Package httpctx carries the authenticated session through request contexts.
package httpctx

import (
	"context"

	"github.com/google/uuid"

	"github.com/Harish050696/cardvault/internal/session"
)

type contextKey int

const (
	sessionIDKey contextKey = iota
	controllerKey
)

// Manager sets and retrieves session values on request contexts.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetSessionToContext attaches the session id and its controller to the context.
func (m *Manager) SetSessionToContext(ctx context.Context, id uuid.UUID, controller *session.Controller) context.Context {
	ctx = context.WithValue(ctx, sessionIDKey, id)
	return context.WithValue(ctx, controllerKey, controller)
}

// GetSessionIDFromContext retrieves the session id set by the authentication
// middleware.
func (m *Manager) GetSessionIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(sessionIDKey).(uuid.UUID)
	return id, ok
}

// GetControllerFromContext retrieves the session controller set by the
// authentication middleware.
func (m *Manager) GetControllerFromContext(ctx context.Context) (*session.Controller, bool) {
	controller, ok := ctx.Value(controllerKey).(*session.Controller)
	return controller, ok
}
