package services

import (
	"context"
	"crisis-center-service/internal/domain"
	"crisis-center-service/internal/platform/obs"
	"crisis-center-service/internal/ports"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
)

// CityResolver maps a free-text city name to coordinates inside Finland.
//
// Resolution is best-effort: when the geocoding collaborator is missing,
// unreachable, finds nothing, or finds something outside Finland, the
// resolver answers with the fixed fallback point instead of failing. The
// only hard error is an empty city name.
type CityResolver struct {
	Geocoder ports.Geocoder     // nil when no collaborator is configured
	Cache    ports.GeocodeCache // optional
	Timeout  time.Duration
	Metrics  *obs.Metrics
}

// Resolve returns the coordinates for a city and the source of the answer.
func (r *CityResolver) Resolve(ctx context.Context, city string) (domain.Coordinates, domain.CoordinateSource, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return domain.Coordinates{}, "", fmt.Errorf("resolve city: %w", ErrInvalidInput)
	}

	if r.Geocoder == nil {
		log.Printf("geocoder not configured, using fallback coordinates city=%q", city)
		return domain.FallbackCoordinates, domain.SourceFallback, nil
	}

	key := strings.ToLower(city)
	if r.Cache != nil {
		coords, ok, err := r.Cache.Get(ctx, key)
		if err != nil {
			log.Printf("geocode cache read failed city=%q err=%v", city, err)
		} else if ok {
			r.Metrics.GeocodeCacheResult("hit")
			return coords, domain.SourceGeocoded, nil
		} else {
			r.Metrics.GeocodeCacheResult("miss")
		}
	}

	coords, ok := r.geocode(ctx, city)
	if !ok {
		log.Printf("using fallback coordinates city=%q", city)
		return domain.FallbackCoordinates, domain.SourceFallback, nil
	}

	// Only geocoded, Finland-validated results are worth caching; the
	// fallback point is not the city's real location.
	if r.Cache != nil {
		if err := r.Cache.Put(ctx, key, coords); err != nil {
			log.Printf("geocode cache write failed city=%q err=%v", city, err)
		}
	}

	return coords, domain.SourceGeocoded, nil
}

// geocode performs a single bounded collaborator call. Any failure mode
// (error, no result, wrong country, out of bounds) maps to ok=false.
func (r *CityResolver) geocode(parent context.Context, city string) (domain.Coordinates, bool) {
	// Bias results toward Finland, matching the catalog's coverage.
	query := city + ", Finland"

	var res ports.GeocodeResult
	err := callBounded(parent, r.Timeout, func(ctx context.Context) error {
		var callErr error
		res, callErr = r.Geocoder.Geocode(ctx, query)
		return callErr
	})
	if err != nil {
		if errors.Is(err, ports.ErrNoResults) {
			log.Printf("no geocode results city=%q", city)
			r.Metrics.GeocodeOutcome("not_found")
		} else {
			log.Printf("geocoding failed city=%q err=%v", city, err)
			r.Metrics.GeocodeOutcome("error")
		}
		return domain.Coordinates{}, false
	}

	// Never leak a non-Finnish location for a Finnish city query.
	if !strings.EqualFold(res.CountryCode, "FI") {
		log.Printf("geocode result not in Finland city=%q country=%q", city, res.CountryCode)
		r.Metrics.GeocodeOutcome("wrong_country")
		return domain.Coordinates{}, false
	}

	if !res.Coordinates.InFinland() {
		log.Printf(
			"geocode result outside Finland bounds city=%q lat=%f lon=%f",
			city, res.Coordinates.Lat, res.Coordinates.Lon,
		)
		r.Metrics.GeocodeOutcome("out_of_bounds")
		return domain.Coordinates{}, false
	}

	r.Metrics.GeocodeOutcome("success")
	return res.Coordinates, true
}
