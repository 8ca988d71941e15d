package services

import (
	"context"
	"crisis-center-service/internal/domain"
	"crisis-center-service/internal/ports"
	"errors"
	"testing"
	"time"
)

func TestFindNearestCenterWithFallback(t *testing.T) {
	reg := testRegistry(t)
	svc := &LookupService{
		Registry: reg,
		Resolver: &CityResolver{}, // no geocoder configured
	}

	res, err := svc.FindNearestCenter(context.Background(), "Helsinki")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Source != domain.SourceFallback {
		t.Fatalf("source = %q, want fallback", res.Source)
	}
	// The fallback point coincides with the Jyväskylä center, so the
	// computed nearest is Jyväskylä at ~0 km, not Helsinki.
	if res.Nearest.Center.Region != "Jyväskylä" {
		t.Fatalf("nearest = %q, want Jyväskylä", res.Nearest.Center.Region)
	}
	if res.Nearest.DistanceKm > 0.1 {
		t.Fatalf("distance = %f, want ~0", res.Nearest.DistanceKm)
	}

	if len(res.Alternatives) != DefaultAlternativeCount {
		t.Fatalf("alternatives = %d, want %d", len(res.Alternatives), DefaultAlternativeCount)
	}
	for _, alt := range res.Alternatives {
		if alt.Center.Region == res.Nearest.Center.Region {
			t.Fatal("alternatives include the primary center")
		}
	}

	if res.Travel != nil {
		t.Fatal("travel estimates present without an estimator")
	}
	if res.Timestamp.IsZero() {
		t.Fatal("timestamp not set")
	}
}

func TestFindNearestCenterGeocoded(t *testing.T) {
	reg := testRegistry(t)
	geocoder := &fakeGeocoder{result: ports.GeocodeResult{
		Coordinates: domain.Coordinates{Lat: 60.1699, Lon: 24.9384},
		CountryCode: "FI",
	}}

	est := newFakeEstimator()
	est.legs[ports.ModeDriving] = ports.TravelLeg{DurationText: "5 mins", DistanceText: "2 km"}
	est.errs[ports.ModeTransit] = errors.New("down")

	svc := &LookupService{
		Registry: reg,
		Resolver: &CityResolver{Geocoder: geocoder},
		Enricher: NewTravelEnricher(est, time.Second, nil),
	}

	res, err := svc.FindNearestCenter(context.Background(), "Helsinki")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Source != domain.SourceGeocoded {
		t.Fatalf("source = %q, want geocoded", res.Source)
	}
	if res.Nearest.Center.Region != "Helsinki" {
		t.Fatalf("nearest = %q, want Helsinki", res.Nearest.Center.Region)
	}
	if res.Nearest.DistanceKm != 0 {
		t.Fatalf("distance = %f, want 0", res.Nearest.DistanceKm)
	}

	if res.Travel == nil {
		t.Fatal("travel estimates missing")
	}
	if !res.Travel.Driving.Available {
		t.Fatalf("driving estimate = %+v", res.Travel.Driving)
	}
	if res.Travel.Transit.Available {
		t.Fatal("transit should be unavailable")
	}
}

func TestFindNearestCenterInvalidInput(t *testing.T) {
	svc := &LookupService{
		Registry: testRegistry(t),
		Resolver: &CityResolver{},
	}

	_, err := svc.FindNearestCenter(context.Background(), "  ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestFindNearestCenterEmptyRegistry(t *testing.T) {
	svc := &LookupService{
		Registry: emptyRegistry{},
		Resolver: &CityResolver{},
	}

	_, err := svc.FindNearestCenter(context.Background(), "Helsinki")
	if !errors.Is(err, ErrRegistryUnavailable) {
		t.Fatalf("err = %v, want ErrRegistryUnavailable", err)
	}
}
