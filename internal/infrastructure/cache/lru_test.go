package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/canvasclip/internal/application/port"
)

var _ port.Cache[string, bool] = (*LRU[string, bool])(nil)

func TestLRU_BasicOperations(t *testing.T) {
	cache := NewLRU[string, bool](3)

	cache.Set("https://example.com/a.png", true)
	cache.Set("https://example.com/page", false)

	val, ok := cache.Get("https://example.com/a.png")
	assert.True(t, ok)
	assert.True(t, val)

	val, ok = cache.Get("https://example.com/page")
	assert.True(t, ok)
	assert.False(t, val)

	_, ok = cache.Get("notfound")
	assert.False(t, ok)

	assert.Equal(t, 2, cache.Len())
}

func TestLRU_GetUpdatesRecency(t *testing.T) {
	cache := NewLRU[string, int](2)

	cache.Set("a", 1)
	cache.Set("b", 2)
	cache.Get("a")

	// "b" is now least recently used.
	cache.Set("c", 3)

	_, ok := cache.Get("b")
	assert.False(t, ok, "b should have been evicted")
	val, ok := cache.Get("a")
	assert.True(t, ok, "a should still exist")
	assert.Equal(t, 1, val)
}

func TestLRU_UpdateExistingAndRemove(t *testing.T) {
	cache := NewLRU[string, int](2)

	cache.Set("a", 1)
	cache.Set("a", 100)
	val, _ := cache.Get("a")
	assert.Equal(t, 100, val)
	assert.Equal(t, 1, cache.Len())

	cache.Remove("a")
	cache.Remove("notfound")
	assert.Equal(t, 0, cache.Len())
}

func TestLRU_ZeroCapacityAndClear(t *testing.T) {
	cache := NewLRU[string, int](0)

	cache.Set("a", 1)
	cache.Set("b", 2)
	_, ok := cache.Get("a")
	assert.False(t, ok)

	cache.Clear()
	assert.Equal(t, 0, cache.Len())
}

func TestLRU_TTLExpiresEntries(t *testing.T) {
	now := time.Unix(0, 0)
	cache := NewLRU[string, bool](4, WithTTL(time.Minute), WithClock(func() time.Time { return now }))

	cache.Set("ref", true)

	now = now.Add(30 * time.Second)
	_, ok := cache.Get("ref")
	assert.True(t, ok)

	now = now.Add(30 * time.Second)
	_, ok = cache.Get("ref")
	assert.False(t, ok, "entry should expire after its ttl")
	assert.Equal(t, 0, cache.Len())
}

func TestLRU_SetRestartsTTL(t *testing.T) {
	now := time.Unix(0, 0)
	cache := NewLRU[string, bool](4, WithTTL(time.Minute), WithClock(func() time.Time { return now }))

	cache.Set("ref", false)
	now = now.Add(50 * time.Second)
	cache.Set("ref", true)
	now = now.Add(50 * time.Second)

	val, ok := cache.Get("ref")
	require.True(t, ok)
	assert.True(t, val)
}

func TestLRU_ConcurrentAccess(t *testing.T) {
	cache := NewLRU[int, int](100)
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func(i int) {
			defer wg.Done()
			cache.Set(i+100, i)
		}(i)
		go func(i int) {
			defer wg.Done()
			cache.Get(i)
		}(i)
		go func(i int) {
			defer wg.Done()
			cache.Remove(i + 50)
		}(i)
	}
	wg.Wait()

	require.LessOrEqual(t, cache.Len(), 100)
}
