package httpctx

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventlane/eventlane-server/internal/model"
)

func TestManager_RoundTrip(t *testing.T) {
	t.Parallel()

	m := NewManager()

	principal := model.Principal{
		User:    model.User{ID: uuid.New(), Email: "a@x.com"},
		Session: model.Session{ID: uuid.New()},
	}

	ctx := m.SetPrincipal(context.Background(), principal)

	got, ok := m.GetPrincipal(ctx)
	require.True(t, ok)
	assert.Equal(t, principal, got)
}

func TestManager_Missing(t *testing.T) {
	t.Parallel()

	m := NewManager()

	_, ok := m.GetPrincipal(context.Background())
	assert.False(t, ok)
}
