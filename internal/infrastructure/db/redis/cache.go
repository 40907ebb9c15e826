package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/localspot/directory-api/internal/api/metrics"
	"github.com/localspot/directory-api/internal/core/ports"
)

const (
	versionKey = "listings:ver"
	entryTTL   = 60 * time.Second
)

// ListingCache caches serialised listing pages in Redis. Every entry key
// embeds a version number; Invalidate bumps the version so all existing
// entries become unreachable and age out via TTL. That keeps invalidation a
// single INCR instead of a SCAN over the keyspace.
//
// The cache is best-effort: backend errors are logged and reported as misses
// so a Redis outage never takes the listing endpoint down with it.
type ListingCache struct {
	client *redis.Client
	logger zerolog.Logger
}

var _ ports.ListingCache = (*ListingCache)(nil)

func NewListingCache(client *redis.Client, logger zerolog.Logger) *ListingCache {
	return &ListingCache{client: client, logger: logger}
}

func (c *ListingCache) Get(ctx context.Context, key string) ([]byte, bool) {
	payload, err := c.client.Get(ctx, c.entryKey(ctx, key)).Bytes()
	if err == redis.Nil {
		metrics.ListingCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}
	if err != nil {
		c.logger.Warn().Err(err).Msg("listing cache get failed")
		metrics.ListingCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	metrics.ListingCacheTotal.WithLabelValues("hit").Inc()
	return payload, true
}

func (c *ListingCache) Set(ctx context.Context, key string, payload []byte) {
	if err := c.client.Set(ctx, c.entryKey(ctx, key), payload, entryTTL).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("listing cache set failed")
	}
}

func (c *ListingCache) Invalidate(ctx context.Context) {
	if err := c.client.Incr(ctx, versionKey).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("listing cache invalidate failed")
	}
}

func (c *ListingCache) entryKey(ctx context.Context, key string) string {
	version, err := c.client.Get(ctx, versionKey).Int64()
	if err != nil && err != redis.Nil {
		c.logger.Warn().Err(err).Msg("listing cache version lookup failed")
	}
	return fmt.Sprintf("listings:%d:%s", version, key)
}
