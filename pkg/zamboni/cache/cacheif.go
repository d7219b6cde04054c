package cache

import "time"

// cache for rendered history fragments. the history view is a pure
// projection of its inputs, so a fragment keyed by (slug, latest
// version id, version count) stays valid until the product grows a
// new version, at which point the key itself changes; the ttl only
// bounds how long entries for deleted products linger.
type ZamboniCacheInterface interface {
	IsCacheUsable() (bool, error)
	// the bool result discerns a miss from an empty cached value.
	Get(key string) (string, bool, error)
	Set(key string, value string, timeout time.Duration) error
	Delete(key string) error
}
