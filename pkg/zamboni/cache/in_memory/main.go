package in_memory

import (
	"sync"
	"time"

	"github.com/naveen24691/zamboni/pkg/zamboni"
)

// in-process ttl cache. used when no external cache is configured.

type cacheVal struct {
	timer *cacheTimer
	timeout time.Duration
	value string
}

type cacheTimer struct {
	t *time.Timer
	associatedKey string
}

type ZamboniInMemoryCache struct {
	defaultTimeout time.Duration
	mutex *sync.RWMutex
	val map[string]*cacheVal
	timerPool sync.Pool
}

func newCacheTimer(d time.Duration) *cacheTimer {
	return &cacheTimer{
		t: time.NewTimer(d),
		associatedKey: "",
	}
}

func NewZamboniInMemoryCache(cfg *zamboni.ZamboniConfig) (*ZamboniInMemoryCache, error) {
	d := time.Duration(cfg.Cache.TimeoutSecond) * time.Second
	if d <= 0 { d = 5 * time.Minute }
	res := &ZamboniInMemoryCache{
		defaultTimeout: d,
		mutex: &sync.RWMutex{},
		val: make(map[string]*cacheVal, 0),
		timerPool: sync.Pool{
			New: func() any {
				return newCacheTimer(d)
			},
		},
	}
	return res, nil
}

func (tc *ZamboniInMemoryCache) timerFunc(t *cacheTimer) {
	<-t.t.C
	tc.mutex.Lock()
	// the key may have been deleted and re-set with another timer
	// while we waited; only evict an entry this timer still owns.
	v, ok := tc.val[t.associatedKey]
	if ok && v.timer == t {
		delete(tc.val, t.associatedKey)
	}
	tc.mutex.Unlock()
	tc.timerPool.Put(t)
}

func (tc *ZamboniInMemoryCache) IsCacheUsable() (bool, error) {
	return true, nil
}

func (tc *ZamboniInMemoryCache) Get(key string) (string, bool, error) {
	tc.mutex.RLock()
	defer tc.mutex.RUnlock()
	v, ok := tc.val[key]
	if !ok { return "", false, nil }
	return v.value, true, nil
}

func (tc *ZamboniInMemoryCache) Set(key string, value string, timeout time.Duration) error {
	if timeout <= 0 { timeout = tc.defaultTimeout }
	tc.mutex.Lock()
	defer tc.mutex.Unlock()
	_, ok := tc.val[key]
	if ok {
		tc.val[key].value = value
		tc.val[key].timeout = timeout
		tc.val[key].timer.t.Reset(timeout)
		return nil
	}
	t := tc.timerPool.Get().(*cacheTimer)
	t.associatedKey = key
	tc.val[key] = &cacheVal{
		timer: t,
		timeout: timeout,
		value: value,
	}
	t.t.Reset(timeout)
	go tc.timerFunc(t)
	return nil
}

func (tc *ZamboniInMemoryCache) Delete(key string) error {
	tc.mutex.Lock()
	defer tc.mutex.Unlock()
	v, ok := tc.val[key]
	if !ok { return nil }
	delete(tc.val, key)
	// fire the timer now instead of pooling it here; its goroutine is
	// still reading the channel, and it puts the timer back itself.
	v.timer.t.Reset(0)
	return nil
}
