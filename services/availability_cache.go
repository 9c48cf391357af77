package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hotel-booking/models"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	cacheGenKey = "avail:gen"
	cacheTTL    = 60 * time.Second
)

// AvailabilityCache is a short-TTL cache in front of the room search.
// Keys embed a generation counter; Invalidate bumps the counter so every
// cached search is orphaned at once and expires with its TTL. A nil cache
// (Redis not configured) is a no-op on every method.
type AvailabilityCache struct {
	client *redis.Client
}

func NewAvailabilityCache(client *redis.Client) *AvailabilityCache {
	if client == nil {
		return nil
	}
	return &AvailabilityCache{client: client}
}

func (c *AvailabilityCache) generation(ctx context.Context) int64 {
	gen, err := c.client.Get(ctx, cacheGenKey).Int64()
	if err != nil {
		return 0
	}
	return gen
}

// Key builds the cache key for one search.
func (c *AvailabilityCache) Key(ctx context.Context, checkIn, checkOut time.Time, categorySlug string) string {
	return fmt.Sprintf("avail:%d:%s:%s:%s",
		c.generation(ctx),
		checkIn.Format(dateLayout),
		checkOut.Format(dateLayout),
		categorySlug,
	)
}

// Get loads a cached search result. Returns false on miss or decode error.
func (c *AvailabilityCache) Get(ctx context.Context, key string, rooms *[]models.Room) bool {
	if c == nil {
		return false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, rooms); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("availability cache: bad payload, dropping")
		c.client.Del(ctx, key)
		return false
	}
	return true
}

// Set stores a search result. Failures are logged and ignored.
func (c *AvailabilityCache) Set(ctx context.Context, key string, rooms []models.Room) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(rooms)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, cacheTTL).Err(); err != nil {
		log.Warn().Err(err).Msg("availability cache: set failed")
	}
}

// Invalidate orphans all cached searches. Called whenever a booking status
// changes, since only confirmed bookings affect availability.
func (c *AvailabilityCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.client.Incr(ctx, cacheGenKey).Err(); err != nil {
		log.Warn().Err(err).Msg("availability cache: invalidate failed")
	}
}
