package cache

import (
	"sync"
	"time"

	"github.com/luxerent/pricing-service/internal/models"
)

// OfferingCache keeps recently priced catalog entries so every keystroke in
// the duration picker does not hit postgres. Entries expire after the TTL
// (zero or negative means never); the cache does not invalidate on catalog
// change, callers accept that staleness window.
type OfferingCache struct {
	mu    sync.RWMutex
	ttl   time.Duration
	store map[string]cachedOffering
}

type cachedOffering struct {
	offering *models.ServiceOffering
	storedAt time.Time
}

func NewOfferingCache(ttl time.Duration) *OfferingCache {
	return &OfferingCache{
		ttl:   ttl,
		store: make(map[string]cachedOffering),
	}
}

func (c *OfferingCache) Get(id string) (*models.ServiceOffering, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.store[id]
	if !ok {
		return nil, false
	}
	if c.ttl > 0 && time.Since(e.storedAt) > c.ttl {
		return nil, false
	}
	return e.offering, true
}

func (c *OfferingCache) Set(id string, offering *models.ServiceOffering) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[id] = cachedOffering{offering: offering, storedAt: time.Now()}
}
