package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRepositories(t *testing.T) {
	t.Parallel()

	db := &Connection{}

	t.Run("user repository", func(t *testing.T) {
		t.Parallel()

		repo := NewUserRepository(db)
		require.NotNil(t, repo)
		assert.Equal(t, db, repo.db)
	})

	t.Run("forum repository", func(t *testing.T) {
		t.Parallel()

		repo := NewForumRepository(db)
		require.NotNil(t, repo)
		assert.Equal(t, db, repo.db)
	})

	t.Run("thread repository", func(t *testing.T) {
		t.Parallel()

		repo := NewThreadRepository(db)
		require.NotNil(t, repo)
		assert.Equal(t, db, repo.db)
	})

	t.Run("post repository", func(t *testing.T) {
		t.Parallel()

		repo := NewPostRepository(db)
		require.NotNil(t, repo)
		assert.Equal(t, db, repo.db)
	})
}

func TestConnection_Ping_NilPool(t *testing.T) {
	t.Parallel()

	db := &Connection{}

	err := db.Ping(context.Background())
	assert.Error(t, err)
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "unique violation",
			err:      &pgconn.PgError{Code: pgUniqueViolation},
			expected: true,
		},
		{
			name:     "other postgres error",
			err:      &pgconn.PgError{Code: "23503"},
			expected: false,
		},
		{
			name:     "plain error",
			err:      errors.New("boom"),
			expected: false,
		},
		{
			name:     "nil",
			err:      nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, isUniqueViolation(tt.err))
		})
	}
}
