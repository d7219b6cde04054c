package in_memory

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/naveen24691/zamboni/pkg/zamboni"
)

func newTestCache(t *testing.T) *ZamboniInMemoryCache {
	cfg := &zamboni.ZamboniConfig{}
	cfg.Cache.TimeoutSecond = 60
	c, err := NewZamboniInMemoryCache(cfg)
	require.NoError(t, err)
	return c
}

func TestInMemoryCacheSetGetDelete(t *testing.T) {
	c := newTestCache(t)
	_, hit, err := c.Get("k")
	assert.NoError(t, err)
	assert.False(t, hit)
	require.NoError(t, c.Set("k", "v1", 0))
	s, hit, err := c.Get("k")
	assert.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "v1", s)
	require.NoError(t, c.Set("k", "v2", 0))
	s, _, _ = c.Get("k")
	assert.Equal(t, "v2", s)
	require.NoError(t, c.Delete("k"))
	_, hit, _ = c.Get("k")
	assert.False(t, hit)
	// deleting a missing key is a no-op.
	assert.NoError(t, c.Delete("k"))
}

func TestInMemoryCacheExpiry(t *testing.T) {
	c := newTestCache(t)
	require.NoError(t, c.Set("k", "v", 20*time.Millisecond))
	_, hit, _ := c.Get("k")
	assert.True(t, hit)
	time.Sleep(100 * time.Millisecond)
	_, hit, _ = c.Get("k")
	assert.False(t, hit)
}

// delete-then-set must not leave the new entry's timer shared with
// the old entry's eviction goroutine. run with -race.
func TestInMemoryCacheDeleteThenSet(t *testing.T) {
	c := newTestCache(t)
	for i := 0; i < 100; i++ {
		key := fmt.Sprintf("k%d", i%4)
		require.NoError(t, c.Set(key, "v", time.Minute))
		require.NoError(t, c.Delete(key))
		require.NoError(t, c.Set(key, "w", time.Minute))
	}
	time.Sleep(50 * time.Millisecond)
	for i := 0; i < 4; i++ {
		s, hit, err := c.Get(fmt.Sprintf("k%d", i))
		assert.NoError(t, err)
		assert.True(t, hit)
		assert.Equal(t, "w", s)
	}
}
