package cache

import (
	"context"
	"crisis-center-service/internal/domain"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "geocode:"

// RedisGeocodeCache stores geocode results in redis with a bounded TTL so
// stale city locations eventually refresh on their own.
type RedisGeocodeCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisGeocodeCache(addr string, ttl time.Duration) *RedisGeocodeCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &RedisGeocodeCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

// Ping verifies the connection at startup.
func (r *RedisGeocodeCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Fetch the cached coordinates for a city.
func (r *RedisGeocodeCache) Get(ctx context.Context, city string) (domain.Coordinates, bool, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return domain.Coordinates{}, false, nil
	}

	val, err := r.client.Get(ctx, redisKeyPrefix+city).Result()
	if errors.Is(err, redis.Nil) {
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache: redis get: %w", err)
	}

	coords, err := parseCoordinates(val)
	if err != nil {
		// A malformed value is treated as a miss; the next Put repairs it.
		return domain.Coordinates{}, false, nil
	}

	return coords, true, nil
}

// Store a city -> coordinates mapping with the configured TTL.
func (r *RedisGeocodeCache) Put(ctx context.Context, city string, coords domain.Coordinates) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return errors.New("insert geocode cache: empty city key")
	}

	val := fmt.Sprintf("%.6f,%.6f", coords.Lat, coords.Lon)
	if err := r.client.Set(ctx, redisKeyPrefix+city, val, r.ttl).Err(); err != nil {
		return fmt.Errorf("insert geocode cache city=%q: redis set: %w", city, err)
	}

	return nil
}

func parseCoordinates(val string) (domain.Coordinates, error) {
	latStr, lonStr, ok := strings.Cut(val, ",")
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("malformed cache value %q", val)
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("malformed latitude in %q: %w", val, err)
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("malformed longitude in %q: %w", val, err)
	}

	return domain.Coordinates{Lat: lat, Lon: lon}, nil
}
