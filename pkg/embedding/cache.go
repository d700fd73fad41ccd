package embedding

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "embed:"

// RedisCache stores embedding vectors in Redis keyed by content hash, so
// vectors survive process restarts and are shared between instances.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]float64, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, cacheKeyPrefix+key).Bytes()
	if err != nil {
		return nil, false
	}

	var vector []float64
	if err := json.Unmarshal(data, &vector); err != nil || len(vector) == 0 {
		return nil, false
	}
	return vector, true
}

func (c *RedisCache) Set(ctx context.Context, key string, vector []float64) {
	if c == nil || c.client == nil || len(vector) == 0 {
		return
	}

	data, err := json.Marshal(vector)
	if err != nil {
		return
	}
	// Cache write failures are not worth failing an embedding call over.
	_ = c.client.Set(ctx, cacheKeyPrefix+key, data, c.ttl).Err()
}
