package redisx

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppliesTimeouts(t *testing.T) {
	c := New("localhost:6379")
	defer c.Close()
	assert.Equal(t, 2*time.Second, c.Options().ReadTimeout)
	assert.Equal(t, 2*time.Second, c.Options().WriteTimeout)
}

func TestExists(t *testing.T) {
	mr := miniredis.RunT(t)
	c := New(mr.Addr())
	defer c.Close()
	ctx := context.Background()

	ok, err := Exists(ctx, c, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "present", "1", 0).Err())
	ok, err = Exists(ctx, c, "present")
	require.NoError(t, err)
	assert.True(t, ok)
}
