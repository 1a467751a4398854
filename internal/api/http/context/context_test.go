package context

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkhin/forum-server/internal/model"
)

func TestManager_Identity(t *testing.T) {
	t.Parallel()

	m := NewManager()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		identity := model.Identity{UserID: 7, Username: "alice"}

		ctx := m.SetIdentityToContext(context.Background(), identity)

		got, ok := m.GetIdentityFromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, identity, got)
	})

	t.Run("absent", func(t *testing.T) {
		t.Parallel()

		_, ok := m.GetIdentityFromContext(context.Background())
		assert.False(t, ok)
	})
}
