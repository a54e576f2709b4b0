package content

import (
	"context"
	"sync"
)

// Cache stores cleaned page text keyed by URL. It lives for the process
// lifetime (or the configured TTL for the redis backend) and is never
// invalidated otherwise; a redeploy is the eviction policy.
type Cache interface {
	Get(ctx context.Context, url string) (string, bool)
	Set(ctx context.Context, url, text string)
}

type memoryCache struct {
	docs map[string]string
	mu   sync.RWMutex
}

// NewMemoryCache returns the default in-process document cache.
func NewMemoryCache() Cache {
	return &memoryCache{docs: make(map[string]string)}
}

func (c *memoryCache) Get(_ context.Context, url string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	text, ok := c.docs[url]
	return text, ok
}

// Set overwrites without coordination. Overlapping requests fetching the
// same uncached URL may both write; content is idempotent per URL, so
// last-write-wins costs at most a duplicate network call.
func (c *memoryCache) Set(_ context.Context, url, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs[url] = text
}
