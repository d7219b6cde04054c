package routes

import (
	"fmt"
	"sync"
	"testing"

	"github.com/naveen24691/zamboni/pkg/zamboni"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllowsFirstRequest(t *testing.T) {
	rl := NewRateLimiter(&zamboni.ZamboniConfig{MaxRequestInSecond: 1})
	assert.True(t, rl.IsIPAllowed("10.0.0.1"))
	// the bucket holds one token; a burst from the same ip gets cut.
	assert.False(t, rl.IsIPAllowed("10.0.0.1"))
	// a different ip has its own bucket.
	assert.True(t, rl.IsIPAllowed("10.0.0.2"))
}

func TestRateLimiterConcurrentAccess(t *testing.T) {
	// hammer the limiter from many goroutines over a few ips so the
	// lookup and the insert paths interleave; run with -race.
	rl := NewRateLimiter(&zamboni.ZamboniConfig{MaxRequestInSecond: 8})
	var wg sync.WaitGroup
	for i := range 64 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			ip := fmt.Sprintf("10.0.0.%d", n%4)
			for range 16 {
				rl.IsIPAllowed(ip)
			}
		}(i)
	}
	wg.Wait()
	// whatever the interleaving, exactly one limiter per ip.
	assert.Len(t, rl.limiter, 4)
}
