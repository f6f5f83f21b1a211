package occupancy

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

const (
	cacheName = "occupancy"
	cacheKey  = "availability:occupancy:snapshot"
)

type entry struct {
	ProfessionalID    int64   `json:"professional_id"`
	Booked            int     `json:"booked"`
	Total             int     `json:"total"`
	Percentage        float64 `json:"percentage"`
	BookingsToday     int     `json:"bookings_today"`
	BookingsNext7Days int     `json:"bookings_next_7_days"`
}

// CachedProvider кэширует снимок загрузки в Redis на ttl
// Ошибки Redis не роняют запрос: снимок берется напрямую из Provider
type CachedProvider struct {
	store   Store
	next    Provider
	ttl     time.Duration
	metrics Metrics
	log     Logger
}

// NewCachedProvider создает кэширующую обертку над Provider
// metrics может быть nil
func NewCachedProvider(store Store, next Provider, ttl time.Duration, metrics Metrics, log Logger) *CachedProvider {
	return &CachedProvider{
		store:   store,
		next:    next,
		ttl:     ttl,
		metrics: metrics,
		log:     log,
	}
}

// GetOccupancy возвращает снимок загрузки из кэша или из Provider
func (c *CachedProvider) GetOccupancy(ctx context.Context) (map[int64]domain.Occupancy, error) {
	raw, err := c.store.Get(ctx, cacheKey).Bytes()
	switch {
	case err == nil:
		snapshot, decodeErr := decode(raw)
		if decodeErr == nil {
			c.hit()
			return snapshot, nil
		}
		c.log.Warn("OccupancyCache: failed to decode cached snapshot: %v", decodeErr)
	case errors.Is(err, redis.Nil):
		// промах
	default:
		c.log.Warn("OccupancyCache: redis get failed: %v", err)
	}
	c.miss()

	snapshot, err := c.next.GetOccupancy(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := encode(snapshot)
	if err != nil {
		c.log.Warn("OccupancyCache: failed to encode snapshot: %v", err)
		return snapshot, nil
	}
	if err := c.store.Set(ctx, cacheKey, payload, c.ttl).Err(); err != nil {
		c.log.Warn("OccupancyCache: redis set failed: %v", err)
	}

	return snapshot, nil
}

func (c *CachedProvider) hit() {
	if c.metrics != nil {
		c.metrics.CacheHit(cacheName)
	}
}

func (c *CachedProvider) miss() {
	if c.metrics != nil {
		c.metrics.CacheMiss(cacheName)
	}
}

func encode(snapshot map[int64]domain.Occupancy) ([]byte, error) {
	entries := make([]entry, 0, len(snapshot))
	for id, o := range snapshot {
		entries = append(entries, entry{
			ProfessionalID:    id,
			Booked:            o.Booked,
			Total:             o.Total,
			Percentage:        o.Percentage,
			BookingsToday:     o.BookingsToday,
			BookingsNext7Days: o.BookingsNext7Days,
		})
	}
	return json.Marshal(entries)
}

func decode(raw []byte) (map[int64]domain.Occupancy, error) {
	var entries []entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}

	snapshot := make(map[int64]domain.Occupancy, len(entries))
	for _, e := range entries {
		snapshot[e.ProfessionalID] = domain.Occupancy{
			Booked:            e.Booked,
			Total:             e.Total,
			Percentage:        e.Percentage,
			BookingsToday:     e.BookingsToday,
			BookingsNext7Days: e.BookingsNext7Days,
		}
	}
	return snapshot, nil
}
