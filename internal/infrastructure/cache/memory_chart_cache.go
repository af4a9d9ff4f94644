package cache

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/retail/backend/internal/domain/ledger"
)

// MemoryChartCache is an in-process chart snapshot cache with a TTL. It is
// the default for single-instance deployments; distributed deployments use
// RedisChartCache so invalidations reach every instance.
type MemoryChartCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[uuid.UUID]memoryChartEntry
}

type memoryChartEntry struct {
	chart     *ledger.Chart
	expiresAt time.Time
}

// NewMemoryChartCache creates a chart cache with the given TTL
func NewMemoryChartCache(ttl time.Duration) *MemoryChartCache {
	return &MemoryChartCache{
		ttl:     ttl,
		entries: make(map[uuid.UUID]memoryChartEntry),
	}
}

// Get returns the cached chart for the tenant if present and fresh
func (c *MemoryChartCache) Get(_ context.Context, tenantID uuid.UUID) (*ledger.Chart, bool) {
	c.mu.RLock()
	entry, ok := c.entries[tenantID]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, tenantID)
		c.mu.Unlock()
		return nil, false
	}
	return entry.chart, true
}

// Set stores the tenant's chart snapshot
func (c *MemoryChartCache) Set(_ context.Context, tenantID uuid.UUID, chart *ledger.Chart) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[tenantID] = memoryChartEntry{
		chart:     chart,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Invalidate drops the tenant's cached chart
func (c *MemoryChartCache) Invalidate(_ context.Context, tenantID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, tenantID)
}
