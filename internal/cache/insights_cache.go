package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"sellerscope_backend/internal/models"
	"sellerscope_backend/pkg/utils"
)

// DefaultTTL keeps cached payloads short-lived; the dashboard tolerates a
// minute of staleness but not more.
const DefaultTTL = time.Minute

// InsightsCache is a read-through cache of serialized insights payloads keyed
// by time range. A nil *InsightsCache is a valid no-op cache, so callers never
// have to branch on whether Redis is configured.
type InsightsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis at addr. An empty addr disables caching and returns
// nil, which all methods tolerate.
func New(addr, password string, ttl time.Duration) *InsightsCache {
	if addr == "" {
		return nil
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password})
	return &InsightsCache{client: client, ttl: ttl}
}

// Get returns the cached payload for the time range, or nil on a miss.
// Cache failures are logged and treated as misses.
func (c *InsightsCache) Get(ctx context.Context, timeRange string) *models.InsightsPayload {
	if c == nil {
		return nil
	}
	raw, err := c.client.Get(ctx, cacheKey(timeRange)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			utils.LogError(err, "InsightsCache: Get failed")
		}
		return nil
	}
	var payload models.InsightsPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		utils.LogError(err, "InsightsCache: corrupt cached payload, ignoring")
		return nil
	}
	return &payload
}

// Set stores the payload for the time range. Failures are logged, never fatal.
func (c *InsightsCache) Set(ctx context.Context, timeRange string, payload *models.InsightsPayload) {
	if c == nil || payload == nil {
		return
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		utils.LogError(err, "InsightsCache: marshal failed")
		return
	}
	if err := c.client.Set(ctx, cacheKey(timeRange), raw, c.ttl).Err(); err != nil {
		utils.LogError(err, "InsightsCache: Set failed")
	}
}

// Invalidate drops all cached payloads, used after reseeding the demo data.
func (c *InsightsCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	keys, err := c.client.Keys(ctx, "insights:*").Result()
	if err != nil {
		utils.LogError(err, "InsightsCache: Invalidate scan failed")
		return
	}
	if len(keys) > 0 {
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			utils.LogError(err, "InsightsCache: Invalidate delete failed")
		}
	}
}

func cacheKey(timeRange string) string {
	return fmt.Sprintf("insights:%s", timeRange)
}
