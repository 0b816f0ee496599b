// Package httpctx carries the authenticated principal on request contexts.
package httpctx

import (
	"context"

	"github.com/eventlane/eventlane-server/internal/model"
)

type contextKey int

const principalKey contextKey = iota

// Manager stores and retrieves the resolved principal as an explicit request
// context value.
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// SetPrincipal returns a child context carrying the principal.
func (m *Manager) SetPrincipal(ctx context.Context, principal model.Principal) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}

// GetPrincipal returns the principal attached by the authentication gate.
func (m *Manager) GetPrincipal(ctx context.Context) (model.Principal, bool) {
	principal, ok := ctx.Value(principalKey).(model.Principal)
	return principal, ok
}
