package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aviadn777/qflow-stripe-glow/internal/models"
)

const discoveryKeyPrefix = "discovery:v1:"

// DiscoveryCache stores derived discovery results in redis, keyed by the
// normalized filter value. A hit returns the same result list, mocked
// fields included, for the whole TTL window; identical filters therefore do
// not trigger a second store read. Redis being down degrades to a direct
// fetch and never fails a request.
type DiscoveryCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewDiscoveryCache(rdb *redis.Client, ttl time.Duration) *DiscoveryCache {
	return &DiscoveryCache{rdb: rdb, ttl: ttl}
}

// Key derives the cache key from the full filter object, so a change to any
// single field produces a new key.
func Key(filters models.SearchFilters) string {
	payload, err := json.Marshal(filters.Normalized())
	if err != nil {
		return discoveryKeyPrefix + "invalid"
	}
	sum := sha1.Sum(payload)
	return discoveryKeyPrefix + hex.EncodeToString(sum[:])
}

// Get returns the cached result list for the filters, if present.
func (c *DiscoveryCache) Get(ctx context.Context, filters models.SearchFilters) ([]models.Business, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, Key(filters)).Result()
	if err != nil {
		return nil, false
	}
	var businesses []models.Business
	if err := json.Unmarshal([]byte(raw), &businesses); err != nil {
		return nil, false
	}
	return businesses, true
}

// Set stores the result list for the filters. Failures are swallowed: the
// cache is an optimization, not a source of truth.
func (c *DiscoveryCache) Set(ctx context.Context, filters models.SearchFilters, businesses []models.Business) {
	if c == nil || c.rdb == nil {
		return
	}
	data, err := json.Marshal(businesses)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, Key(filters), string(data), c.ttl)
}
