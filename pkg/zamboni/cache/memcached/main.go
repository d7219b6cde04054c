package memcached

import (
	"fmt"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/naveen24691/zamboni/pkg/zamboni"
)

type ZamboniMemcachedCache struct {
	config *zamboni.ZamboniConfig
	connection *memcache.Client
}

func NewZamboniMemcachedCache(cfg *zamboni.ZamboniConfig) (*ZamboniMemcachedCache, error) {
	c := memcache.New(cfg.Cache.Host)
	return &ZamboniMemcachedCache{
		config: cfg,
		connection: c,
	}, nil
}

func (cif *ZamboniMemcachedCache) properKey(key string) string {
	return fmt.Sprintf("%s:fragment:%s", cif.config.Cache.KeyPrefix, key)
}

func (cif *ZamboniMemcachedCache) IsCacheUsable() (bool, error) {
	err := cif.connection.Ping()
	if err != nil { return false, err }
	return true, nil
}

func (cif *ZamboniMemcachedCache) Get(key string) (string, bool, error) {
	i, err := cif.connection.Get(cif.properKey(key))
	// cache miss is memcached's way of saying the key not found...
	if err == memcache.ErrCacheMiss { return "", false, nil }
	if err != nil { return "", false, err }
	return string(i.Value), true, nil
}

func (cif *ZamboniMemcachedCache) Set(key string, value string, timeout time.Duration) error {
	return cif.connection.Set(&memcache.Item{
		Key: cif.properKey(key),
		Value: []byte(value),
		Flags: 0,
		Expiration: int32(timeout / time.Second),
	})
}

func (cif *ZamboniMemcachedCache) Delete(key string) error {
	err := cif.connection.Delete(cif.properKey(key))
	if err == memcache.ErrCacheMiss { return nil }
	return err
}
