package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	lru "github.com/hashicorp/golang-lru"
)

type lruEntry struct {
	data      []byte
	expiresAt time.Time
}

// LRUCache is the in-process backend used when Redis is not configured.
// Values are stored encoded so callers never share mutable state.
type LRUCache struct {
	entries *lru.Cache
	now     func() time.Time
}

func NewLRUCache(size int) (*LRUCache, error) {
	entries, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create LRU cache: %w", err)
	}
	return &LRUCache{entries: entries, now: time.Now}, nil
}

func (c *LRUCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := c.entries.Get(key)
	if !ok {
		return false, nil
	}
	entry := raw.(lruEntry)
	if !entry.expiresAt.IsZero() && c.now().After(entry.expiresAt) {
		c.entries.Remove(key)
		return false, nil
	}
	if err := json.Unmarshal(entry.data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return true, nil
}

func (c *LRUCache) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	entry := lruEntry{data: data}
	if ttl > 0 {
		entry.expiresAt = c.now().Add(ttl)
	}
	c.entries.Add(key, entry)
	return nil
}

func (c *LRUCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		c.entries.Remove(key)
	}
	return nil
}

func (c *LRUCache) Close() error {
	c.entries.Purge()
	return nil
}
