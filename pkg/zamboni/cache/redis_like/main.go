package redis_like

import (
	"context"
	"fmt"
	"time"

	"github.com/naveen24691/zamboni/pkg/zamboni"
	"github.com/redis/go-redis/v9"
)

type ZamboniRedisLikeCache struct {
	config *zamboni.ZamboniConfig
	connection *redis.Client
}

func NewZamboniRedisLikeCache(cfg *zamboni.ZamboniConfig) (*ZamboniRedisLikeCache, error) {
	c := redis.NewClient(&redis.Options{
		Addr: cfg.Cache.Host,
		Username: cfg.Cache.UserName,
		Password: cfg.Cache.Password,
		DB: cfg.Cache.DatabaseNumber,
	})
	return &ZamboniRedisLikeCache{
		config: cfg,
		connection: c,
	}, nil
}

func (cif *ZamboniRedisLikeCache) properKey(key string) string {
	return fmt.Sprintf("%s:fragment:%s", cif.config.Cache.KeyPrefix, key)
}

func (cif *ZamboniRedisLikeCache) IsCacheUsable() (bool, error) {
	cmd := cif.connection.Ping(context.TODO())
	if cmd.Err() != nil { return false, cmd.Err() }
	return true, nil
}

func (cif *ZamboniRedisLikeCache) Get(key string) (string, bool, error) {
	cmd := cif.connection.Get(context.TODO(), cif.properKey(key))
	if cmd.Err() == redis.Nil { return "", false, nil }
	if cmd.Err() != nil { return "", false, cmd.Err() }
	r, err := cmd.Result()
	if err != nil { return "", false, err }
	return r, true, nil
}

func (cif *ZamboniRedisLikeCache) Set(key string, value string, timeout time.Duration) error {
	cmd := cif.connection.Set(context.TODO(), cif.properKey(key), value, timeout)
	if cmd.Err() != nil { return cmd.Err() }
	return nil
}

func (cif *ZamboniRedisLikeCache) Delete(key string) error {
	cmd := cif.connection.Del(context.TODO(), cif.properKey(key))
	if cmd.Err() != nil { return cmd.Err() }
	return nil
}
