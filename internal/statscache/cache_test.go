package statscache

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_GetSetInvalidate(t *testing.T) {
	cache := NewMemory()
	ctx := context.Background()

	_, ok := cache.Get(ctx, "2024-01-10")
	assert.False(t, ok)

	cache.Set(ctx, "2024-01-10", 3)

	count, ok := cache.Get(ctx, "2024-01-10")
	assert.True(t, ok)
	assert.Equal(t, int64(3), count)

	cache.Invalidate(ctx, "2024-01-10")

	_, ok = cache.Get(ctx, "2024-01-10")
	assert.False(t, ok)
}

func TestMemory_ZeroIsCacheable(t *testing.T) {
	cache := NewMemory()
	ctx := context.Background()

	cache.Set(ctx, "2024-01-10", 0)

	count, ok := cache.Get(ctx, "2024-01-10")
	assert.True(t, ok)
	assert.Equal(t, int64(0), count)
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	cache := NewMemory()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int64) {
			defer wg.Done()
			cache.Set(ctx, "2024-01-10", n)
			cache.Get(ctx, "2024-01-10")
			cache.Invalidate(ctx, "2024-01-11")
		}(int64(i))
	}
	wg.Wait()

	_, ok := cache.Get(ctx, "2024-01-10")
	assert.True(t, ok)
}
