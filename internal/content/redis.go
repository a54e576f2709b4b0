package content

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *log.Logger
}

// NewRedisCache returns a Cache backed by Redis so cleaned documents
// survive restarts and are shared between replicas. Keys expire after ttl.
func NewRedisCache(addr, password string, db int, ttl time.Duration) (Cache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed (%s): %w", addr, err)
	}
	return &redisCache{
		client: client,
		ttl:    ttl,
		logger: log.New(log.Writer(), "[CACHE] ", log.LstdFlags),
	}, nil
}

func pageKey(url string) string { return "page:" + url }

func (c *redisCache) Get(ctx context.Context, url string) (string, bool) {
	text, err := c.client.Get(ctx, pageKey(url)).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Printf("get %s: %v", url, err)
		}
		return "", false
	}
	return text, true
}

// Set failures degrade to re-fetching next time, so they are logged and
// swallowed rather than propagated into the resolution pipeline.
func (c *redisCache) Set(ctx context.Context, url, text string) {
	if err := c.client.Set(ctx, pageKey(url), text, c.ttl).Err(); err != nil {
		c.logger.Printf("set %s: %v", url, err)
	}
}
