package init

import (
	"fmt"

	"github.com/naveen24691/zamboni/pkg/zamboni"
	"github.com/naveen24691/zamboni/pkg/zamboni/cache"
	"github.com/naveen24691/zamboni/pkg/zamboni/cache/in_memory"
	"github.com/naveen24691/zamboni/pkg/zamboni/cache/memcached"
	"github.com/naveen24691/zamboni/pkg/zamboni/cache/redis_like"
)

func InitializeCache(cfg *zamboni.ZamboniConfig) (cache.ZamboniCacheInterface, error) {
	switch cfg.Cache.Type {
	case "", "memory": return in_memory.NewZamboniInMemoryCache(cfg)
	case "redis", "keydb", "valkey": return redis_like.NewZamboniRedisLikeCache(cfg)
	case "memcached": return memcached.NewZamboniMemcachedCache(cfg)
	}
	return nil, fmt.Errorf("cache type %s not supported", cfg.Cache.Type)
}
