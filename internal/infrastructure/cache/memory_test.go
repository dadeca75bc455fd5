package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
}

func TestMemoryCache_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(time.Minute)

	var out sample
	found, err := c.Get(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, found)

	in := sample{Title: "hero", Tags: []string{"a", "b"}}
	require.NoError(t, c.Set(ctx, "k", in, time.Minute))

	found, err = c.Get(ctx, "k", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)

	require.NoError(t, c.Delete(ctx, "k"))
	found, err = c.Get(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryCache_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(time.Minute)

	in := sample{Tags: []string{"a"}}
	require.NoError(t, c.Set(ctx, "k", in, time.Minute))
	in.Tags[0] = "mutated"

	var out sample
	_, err := c.Get(ctx, "k", &out)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, out.Tags)
}
