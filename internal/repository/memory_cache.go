package repository

import (
	"context"
	"sync"
	"time"
)

type cacheEntry struct {
	body    []byte
	expires time.Time
}

// MemoryCache is the in-process counterpart of RedisRepo, used when no Redis
// address is configured.
type MemoryCache struct {
	mu       sync.Mutex
	pageTTL  time.Duration
	pages    map[string]cacheEntry
	sessions map[string]time.Time
	now      func() time.Time
}

func NewMemoryCache(pageTTL time.Duration) *MemoryCache {
	return &MemoryCache{
		pageTTL:  pageTTL,
		pages:    make(map[string]cacheEntry),
		sessions: make(map[string]time.Time),
		now:      time.Now,
	}
}

func (c *MemoryCache) GetPage(ctx context.Context, path string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.pages[path]
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expires) {
		delete(c.pages, path)
		return nil, false
	}
	return entry.body, true
}

func (c *MemoryCache) SavePage(ctx context.Context, path string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages[path] = cacheEntry{body: body, expires: c.now().Add(c.pageTTL)}
}

func (c *MemoryCache) Invalidate(ctx context.Context, paths ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range paths {
		delete(c.pages, p)
	}
	return nil
}

func (c *MemoryCache) SaveSession(ctx context.Context, id string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[id] = c.now().Add(ttl)
	return nil
}

func (c *MemoryCache) SessionExists(ctx context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	expires, ok := c.sessions[id]
	if !ok {
		return false, nil
	}
	if c.now().After(expires) {
		delete(c.sessions, id)
		return false, nil
	}
	return true, nil
}

func (c *MemoryCache) DeleteSession(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, id)
	return nil
}
