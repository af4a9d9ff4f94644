package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/retail/backend/internal/domain/ledger"
)

// RedisChartCache stores chart snapshots in Redis. Suitable for distributed
// deployments where account changes on one instance must invalidate the
// snapshot seen by all instances.
type RedisChartCache struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisChartCache creates a Redis-backed chart cache
func NewRedisChartCache(cfg RedisConfig, ttl time.Duration) (*RedisChartCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisChartCache{
		client:    client,
		keyPrefix: "chart:snapshot:",
		ttl:       ttl,
	}, nil
}

// NewRedisChartCacheWithClient creates a cache over an existing client
func NewRedisChartCacheWithClient(client *redis.Client, ttl time.Duration) *RedisChartCache {
	return &RedisChartCache{
		client:    client,
		keyPrefix: "chart:snapshot:",
		ttl:       ttl,
	}
}

// chartPayload is the serialized form of a chart snapshot
type chartPayload struct {
	TenantID         uuid.UUID                    `json:"tenant_id"`
	Accounts         []*ledger.Account            `json:"accounts"`
	RevenueOverrides map[uuid.UUID]*ledger.Account `json:"revenue_overrides"`
	COGSOverrides    map[uuid.UUID]*ledger.Account `json:"cogs_overrides"`
}

// Get returns the cached chart for the tenant if present. Corrupt or missing
// entries read as a cache miss.
func (c *RedisChartCache) Get(ctx context.Context, tenantID uuid.UUID) (*ledger.Chart, bool) {
	data, err := c.client.Get(ctx, c.keyPrefix+tenantID.String()).Bytes()
	if err != nil {
		return nil, false
	}
	var payload chartPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, false
	}
	return ledger.NewChart(payload.TenantID, payload.Accounts, payload.RevenueOverrides, payload.COGSOverrides), true
}

// Set stores the tenant's chart snapshot with the cache TTL. Serialization
// failures are swallowed; the cache is an optimization, not a store of record.
func (c *RedisChartCache) Set(ctx context.Context, tenantID uuid.UUID, chart *ledger.Chart) {
	payload := chartPayload{
		TenantID:         chart.TenantID(),
		Accounts:         chart.SystemAccounts(),
		RevenueOverrides: chart.RevenueOverrides(),
		COGSOverrides:    chart.COGSOverrides(),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	c.client.Set(ctx, c.keyPrefix+tenantID.String(), data, c.ttl)
}

// Invalidate drops the tenant's cached chart
func (c *RedisChartCache) Invalidate(ctx context.Context, tenantID uuid.UUID) {
	c.client.Del(ctx, c.keyPrefix+tenantID.String())
}

// Close closes the Redis client
func (c *RedisChartCache) Close() error {
	return c.client.Close()
}
