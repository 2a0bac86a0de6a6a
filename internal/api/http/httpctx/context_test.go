package httpctx

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harish050696/cardvault/internal/session"
)

func TestManager_Roundtrip(t *testing.T) {
	m := NewManager()
	id := uuid.New()
	controller := session.NewController(nil, nil)

	ctx := m.SetSessionToContext(context.Background(), id, controller)

	gotID, ok := m.GetSessionIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, id, gotID)

	gotController, ok := m.GetControllerFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, controller, gotController)
}

func TestManager_EmptyContext(t *testing.T) {
	m := NewManager()

	_, ok := m.GetSessionIDFromContext(context.Background())
	assert.False(t, ok)

	_, ok = m.GetControllerFromContext(context.Background())
	assert.False(t, ok)
}
