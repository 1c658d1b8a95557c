package cache

import (
	"sync"
	"time"

	"github.com/Sharif-Hamza/novanews/internal/model"
)

// SnapshotCache holds the latest market snapshot with an expiry
// timestamp. Reads past the expiry return nothing; there is no eviction,
// the next generation run just overwrites the value.
type SnapshotCache struct {
	mu        sync.RWMutex
	snapshot  *model.MarketSnapshot
	expiresAt time.Time
	ttl       time.Duration
}

func NewSnapshotCache(ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{ttl: ttl}
}

func (c *SnapshotCache) Set(s *model.MarketSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = s
	c.expiresAt = time.Now().Add(c.ttl)
}

func (c *SnapshotCache) Get() (*model.MarketSnapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.snapshot == nil || time.Now().After(c.expiresAt) {
		return nil, false
	}
	return c.snapshot, true
}

// StringsCache is the same expiry-timestamp pattern for a string list
// (the category endpoint).
type StringsCache struct {
	mu        sync.RWMutex
	values    []string
	expiresAt time.Time
	ttl       time.Duration
}

func NewStringsCache(ttl time.Duration) *StringsCache {
	return &StringsCache{ttl: ttl}
}

func (c *StringsCache) Set(values []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = values
	c.expiresAt = time.Now().Add(c.ttl)
}

func (c *StringsCache) Get() ([]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.values == nil || time.Now().After(c.expiresAt) {
		return nil, false
	}
	return c.values, true
}
