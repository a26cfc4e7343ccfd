package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/divinelits/storefront/internal/catalog/domain"
	"github.com/divinelits/storefront/pkg/logger"
)

const snapshotKey = "catalog:visible-products"

// SnapshotCache keeps the full visible-product snapshot in Redis so search
// and random-sample reads do not hit the database on every request. The
// cache degrades to a no-op when Redis is unavailable.
type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSnapshotCache creates a snapshot cache. A nil client disables caching.
func NewSnapshotCache(client *redis.Client, ttl time.Duration) *SnapshotCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &SnapshotCache{client: client, ttl: ttl}
}

// Get returns the cached snapshot, or ok=false on miss or cache failure
func (c *SnapshotCache) Get(ctx context.Context) ([]domain.Product, bool) {
	if c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warn(ctx).Err(err).Msg("Snapshot cache read failed")
		}
		return nil, false
	}

	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		logger.Warn(ctx).Err(err).Msg("Snapshot cache payload corrupt, dropping")
		c.Invalidate(ctx)
		return nil, false
	}

	return products, true
}

// Set stores the snapshot with the configured TTL
func (c *SnapshotCache) Set(ctx context.Context, products []domain.Product) {
	if c.client == nil {
		return
	}

	raw, err := json.Marshal(products)
	if err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to encode product snapshot")
		return
	}

	if err := c.client.Set(ctx, snapshotKey, raw, c.ttl).Err(); err != nil {
		logger.Warn(ctx).Err(err).Msg("Snapshot cache write failed")
	}
}

// Invalidate drops the snapshot. Called after every admin mutation.
func (c *SnapshotCache) Invalidate(ctx context.Context) {
	if c.client == nil {
		return
	}

	if err := c.client.Del(ctx, snapshotKey).Err(); err != nil {
		logger.Warn(ctx).Err(err).Msg("Snapshot cache invalidation failed")
	}
}
