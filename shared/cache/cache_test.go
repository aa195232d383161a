package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"atoll/config"
	"atoll/infras/otel/mocks"
	"atoll/shared/cache"

	gocache "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Summary string `json:"summary"`
	Count   int    `json:"count"`
}

func newMemory() cache.Cache {
	return cache.NewMemoryCache(gocache.New(time.Minute, time.Minute), mocks.NewOtel())
}

func TestNew_FallsBackToMemory(t *testing.T) {
	c := cache.New(nil, &config.Config{}, mocks.NewOtel())
	require.NotNil(t, c)

	ctx := context.Background()
	require.NoError(t, c.Save(ctx, "k", "v", 0))

	var got string
	require.NoError(t, c.Get(ctx, "k", &got))
	assert.Equal(t, "v", got)
}

func TestMemoryCache_SaveGet(t *testing.T) {
	ctx := context.Background()
	c := newMemory()

	in := payload{Summary: "All quiet", Count: 2}
	require.NoError(t, c.Save(ctx, "summary:1", in, 60))

	var out payload
	require.NoError(t, c.Get(ctx, "summary:1", &out))
	assert.Equal(t, in, out)

	in.Count = 5

	var again payload
	require.NoError(t, c.Get(ctx, "summary:1", &again))
	assert.Equal(t, 2, again.Count, "stored values are copies")
}

func TestMemoryCache_Miss(t *testing.T) {
	var out string

	err := newMemory().Get(context.Background(), "absent", &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, cache.Nil))
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	ctx := context.Background()
	c := newMemory()

	for _, key := range []string{"rl:a", "rl:b", "summary:x"} {
		require.NoError(t, c.Save(ctx, key, 1, 60))
	}

	require.NoError(t, c.Delete(ctx, "rl:a"))
	require.NoError(t, c.Clear(ctx, "rl:"))

	var n int
	assert.ErrorIs(t, c.Get(ctx, "rl:a", &n), cache.Nil)
	assert.ErrorIs(t, c.Get(ctx, "rl:b", &n), cache.Nil)
	require.NoError(t, c.Get(ctx, "summary:x", &n))
	assert.Equal(t, 1, n)
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c := newMemory()

	require.NoError(t, c.Save(ctx, "short", "v", 1))
	time.Sleep(1100 * time.Millisecond)

	var out string
	assert.ErrorIs(t, c.Get(ctx, "short", &out), cache.Nil)
}
