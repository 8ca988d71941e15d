package ports

import (
	"context"
	"crisis-center-service/internal/domain"
)

// Port: persistent cache of successful geocode results. Cache errors are
// advisory; callers treat them as misses.
type GeocodeCache interface {
	Get(ctx context.Context, city string) (domain.Coordinates, bool, error)
	Put(ctx context.Context, city string, coords domain.Coordinates) error
}
