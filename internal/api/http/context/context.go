package context

import (
	"context"

	"github.com/avolkhin/forum-server/internal/model"
)

type contextKey int

// identityKey is the context key the authenticated identity is stored
// under.
const identityKey contextKey = iota

// Manager stores and retrieves the authenticated identity on a request
// context.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetIdentityToContext returns a child context carrying the identity.
func (m *Manager) SetIdentityToContext(ctx context.Context, identity model.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentityFromContext retrieves the identity set by the
// authentication middleware. The boolean reports whether one was set.
func (m *Manager) GetIdentityFromContext(ctx context.Context) (model.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(model.Identity)
	return identity, ok
}
