package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilCacheLoadsDirectly(t *testing.T) {
	var c *Cache
	calls := 0
	load := func(context.Context) ([]byte, error) {
		calls++
		return []byte("fresh"), nil
	}

	b, err := c.GetOrLoad(context.Background(), "k", time.Minute, load)
	require.NoError(t, err)
	assert.Equal(t, []byte("fresh"), b)

	// No redis, no memoization: every call hits the loader.
	_, err = c.GetOrLoad(context.Background(), "k", time.Minute, load)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)

	// Invalidate on a nil cache is a no-op.
	c.Invalidate(context.Background(), "k")
}

func TestNilCacheGetOrLoadJSON(t *testing.T) {
	type row struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}

	out, err := GetOrLoadJSON(nil, context.Background(), "k", time.Minute, func(context.Context) ([]row, error) {
		return []row{{ID: 1, Name: "one"}}, nil
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "one", out[0].Name)
}

func TestNilCachePropagatesLoadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := GetOrLoadJSON(nil, context.Background(), "k", time.Minute, func(context.Context) ([]int, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
}
