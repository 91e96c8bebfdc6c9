package repo

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// cachedItineraryRepo is a read-through Redis cache in front of another
// ItineraryRepo. Saved itineraries never change, so entries only leave the
// cache on Delete or TTL expiry.
//
// Redis failures are logged and otherwise ignored: the wrapped repo is the
// source of truth and a cache outage must not fail requests.
type cachedItineraryRepo struct {
	next ItineraryRepo
	rdb  redis.Cmdable
	ttl  time.Duration
	log  *slog.Logger
}

// NewCachedItineraryRepo wraps next with a Redis cache keyed by itinerary ID.
func NewCachedItineraryRepo(next ItineraryRepo, rdb redis.Cmdable, ttl time.Duration, log *slog.Logger) ItineraryRepo {
	if log == nil {
		log = slog.Default()
	}
	return &cachedItineraryRepo{next: next, rdb: rdb, ttl: ttl, log: log}
}

// cacheKey returns the Redis key for an itinerary ID.
func cacheKey(id uuid.UUID) string {
	return "itinerary:" + id.String()
}

// Create stores via the wrapped repo and primes the cache with the result.
func (c *cachedItineraryRepo) Create(ctx context.Context, req domain.TripRequest, it domain.Itinerary) (domain.SavedItinerary, error) {
	saved, err := c.next.Create(ctx, req, it)
	if err != nil {
		return domain.SavedItinerary{}, err
	}
	c.store(ctx, saved)
	return saved, nil
}

// GetByID serves from Redis when possible and fills the cache on a miss.
func (c *cachedItineraryRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.SavedItinerary, error) {
	raw, err := c.rdb.Get(ctx, cacheKey(id)).Bytes()
	switch {
	case err == nil:
		var saved domain.SavedItinerary
		if jerr := json.Unmarshal(raw, &saved); jerr == nil {
			return saved, nil
		}
		c.log.WarnContext(ctx, "discarding corrupt cache entry", "itinerary_id", id)
	case !errors.Is(err, redis.Nil):
		c.log.WarnContext(ctx, "cache read failed", "itinerary_id", id, "error", err)
	}

	saved, err := c.next.GetByID(ctx, id)
	if err != nil {
		return domain.SavedItinerary{}, err
	}
	c.store(ctx, saved)
	return saved, nil
}

// ListPaged is not cached; pages shift as itineraries are created.
func (c *cachedItineraryRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.SavedItinerary, int64, error) {
	return c.next.ListPaged(ctx, p)
}

// Delete removes the row first and then evicts the cache entry.
func (c *cachedItineraryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.next.Delete(ctx, id); err != nil {
		return err
	}
	if err := c.rdb.Del(ctx, cacheKey(id)).Err(); err != nil {
		c.log.WarnContext(ctx, "cache eviction failed", "itinerary_id", id, "error", err)
	}
	return nil
}

func (c *cachedItineraryRepo) store(ctx context.Context, saved domain.SavedItinerary) {
	raw, err := json.Marshal(saved)
	if err != nil {
		c.log.WarnContext(ctx, "cache encode failed", "itinerary_id", saved.ID, "error", err)
		return
	}
	if err := c.rdb.Set(ctx, cacheKey(saved.ID), raw, c.ttl).Err(); err != nil {
		c.log.WarnContext(ctx, "cache write failed", "itinerary_id", saved.ID, "error", err)
	}
}
