package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	log := New(0)

	require.NotNil(t, log)
	assert.NotNil(t, log.Logger)
	assert.True(t, log.Enabled(nil, 0))
	assert.False(t, log.Enabled(nil, -4))
}
