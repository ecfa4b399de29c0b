package cache

import (
	"sync"
	"time"

	"github.com/Cheertaboi/coffee-shop-billing/internal/models"
)

// MenuCache holds the last menu listing for at most ttl.
type MenuCache struct {
	mu       sync.RWMutex
	items    []models.MenuItem
	loadedAt time.Time
	ttl      time.Duration
	now      func() time.Time
}

func NewMenuCache(ttl time.Duration) *MenuCache {
	return &MenuCache{ttl: ttl, now: time.Now}
}

// Get returns a copy of the cached listing if it is still fresh.
func (c *MenuCache) Get() ([]models.MenuItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.items == nil || c.now().Sub(c.loadedAt) >= c.ttl {
		return nil, false
	}
	out := make([]models.MenuItem, len(c.items))
	copy(out, c.items)
	return out, true
}

func (c *MenuCache) Set(items []models.MenuItem) {
	stored := make([]models.MenuItem, len(items))
	copy(stored, items)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = stored
	c.loadedAt = c.now()
}

func (c *MenuCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}
