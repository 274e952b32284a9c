// Package cache keeps short-lived dashboard aggregates in redis so
// the cashier and manager screens do not re-aggregate the ledger on
// every poll.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

const statsTTL = 30 * time.Second

// DashboardStatsKey is the cache key for the cashier/manager totals.
const DashboardStatsKey = "dashboard:stats"

type StatsCache struct {
	rdb *redis.Client
}

// NewStatsCache returns nil when addr is empty; callers treat a nil
// cache as a pass-through.
func NewStatsCache(addr string) *StatsCache {
	if addr == "" {
		return nil
	}

	return &StatsCache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (c *StatsCache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		// redis.Nil and transport errors both read as a miss.
		return false
	}

	return json.Unmarshal(raw, dest) == nil
}

func (c *StatsCache) Set(ctx context.Context, key string, value any) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}

	c.rdb.Set(ctx, key, raw, statsTTL)
}

func (c *StatsCache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	c.rdb.Del(ctx, keys...)
}
