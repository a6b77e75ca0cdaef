package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// pageTTL bounds staleness of cached audit targets. Re-audits within the
// window reuse the same text, which also makes retries idempotent.
const pageTTL = time.Hour

type PageCache struct {
	rdb *redis.Client
}

func NewPageCache(addr string) (*PageCache, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &PageCache{rdb: rdb}, nil
}

func (c *PageCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.rdb.Get(ctx, "audit:page:"+key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		// Cache outage degrades to a live fetch.
		logrus.Warnf("page cache read failed: %v", err)
		return "", false
	}
	return val, true
}

func (c *PageCache) Set(ctx context.Context, key, value string) {
	if err := c.rdb.Set(ctx, "audit:page:"+key, value, pageTTL).Err(); err != nil {
		logrus.Warnf("page cache write failed: %v", err)
	}
}
