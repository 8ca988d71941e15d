package ports

import (
	"context"
	"crisis-center-service/internal/domain"
	"errors"
)

// ErrNoResults is returned by a Geocoder when the query matched nothing.
var ErrNoResults = errors.New("no geocode results")

// Location and country of the best match for a geocoding query.
type GeocodeResult struct {
	Coordinates domain.Coordinates
	// ISO 3166-1 alpha-2 country code of the match, e.g. "FI".
	CountryCode string
}

// Port: a boundary for resolving free-text place queries to coordinates.
type Geocoder interface {
	// Resolve the query to the best matching location.
	Geocode(ctx context.Context, query string) (GeocodeResult, error)
}
