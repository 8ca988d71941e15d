package cache

import (
	"context"
	"crisis-center-service/internal/domain"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func newTestRedisCache(t *testing.T) (*RedisGeocodeCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	return NewRedisGeocodeCache(mr.Addr(), time.Minute), mr
}

func TestRedisGeocodeCacheRoundTrip(t *testing.T) {
	c, _ := newTestRedisCache(t)
	ctx := context.Background()

	if err := c.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}

	if _, ok, err := c.Get(ctx, "rovaniemi"); err != nil || ok {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}

	want := domain.Coordinates{Lat: 66.5039, Lon: 25.7294}
	if err := c.Put(ctx, "rovaniemi", want); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.Get(ctx, "rovaniemi")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestRedisGeocodeCacheExpiry(t *testing.T) {
	c, mr := newTestRedisCache(t)
	ctx := context.Background()

	if err := c.Put(ctx, "kuopio", domain.Coordinates{Lat: 62.8924, Lon: 27.6782}); err != nil {
		t.Fatalf("put: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, ok, err := c.Get(ctx, "kuopio"); err != nil || ok {
		t.Fatalf("entry should have expired, got ok=%v err=%v", ok, err)
	}
}

func TestRedisGeocodeCacheMalformedValue(t *testing.T) {
	c, mr := newTestRedisCache(t)

	if err := mr.Set(redisKeyPrefix+"oulu", "not-coordinates"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Malformed entries degrade to misses instead of failing the lookup.
	if _, ok, err := c.Get(context.Background(), "oulu"); err != nil || ok {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}
}
