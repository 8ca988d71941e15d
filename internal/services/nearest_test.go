package services

import (
	"crisis-center-service/internal/domain"
	"crisis-center-service/internal/registry"
	"errors"
	"testing"
)

func testRegistry(t *testing.T) *registry.StaticRegistry {
	t.Helper()
	reg, err := registry.New(registry.BuiltinCenters())
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	return reg
}

func TestFindNearestFromHelsinki(t *testing.T) {
	reg := testRegistry(t)

	helsinki := domain.Coordinates{Lat: 60.1699, Lon: 24.9384}
	nearest, err := FindNearest(helsinki, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if nearest.Center.Region != "Helsinki" {
		t.Fatalf("nearest = %q, want Helsinki", nearest.Center.Region)
	}
	if nearest.DistanceKm != 0 {
		t.Fatalf("distance = %f, want 0", nearest.DistanceKm)
	}
}

func TestFindNearestIsMinimal(t *testing.T) {
	reg := testRegistry(t)

	// A point between Kuopio and Oulu; verify no center is strictly closer
	// than the one selected.
	loc := domain.Coordinates{Lat: 64.0, Lon: 26.5}
	nearest, err := FindNearest(loc, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, c := range reg.All() {
		if d := domain.DistanceKm(loc, c.Coordinates()); d < nearest.DistanceKm {
			t.Fatalf(
				"center %q at %f km is closer than selected %q at %f km",
				c.Region, d, nearest.Center.Region, nearest.DistanceKm,
			)
		}
	}
}

func TestFindNearestFromFallbackPoint(t *testing.T) {
	reg := testRegistry(t)

	// The fallback point is the geographic center of Finland, which happens
	// to be the Jyväskylä center's published location.
	nearest, err := FindNearest(domain.FallbackCoordinates, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if nearest.Center.Region != "Jyväskylä" {
		t.Fatalf("nearest = %q, want Jyväskylä", nearest.Center.Region)
	}
	if nearest.DistanceKm > 0.1 {
		t.Fatalf("distance = %f, want ~0", nearest.DistanceKm)
	}
}

func TestFindNearestEmptyRegistry(t *testing.T) {
	_, err := FindNearest(domain.FallbackCoordinates, emptyRegistry{})
	if !errors.Is(err, ErrRegistryUnavailable) {
		t.Fatalf("err = %v, want ErrRegistryUnavailable", err)
	}
}

type emptyRegistry struct{}

func (emptyRegistry) All() []domain.CrisisCenter { return nil }
func (emptyRegistry) ByRegion(string) (domain.CrisisCenter, bool) {
	return domain.CrisisCenter{}, false
}
func (emptyRegistry) Search(string) []domain.CrisisCenter { return nil }

func TestFindAlternatives(t *testing.T) {
	reg := testRegistry(t)

	nearest, err := FindNearest(domain.FallbackCoordinates, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	alts := FindAlternatives(domain.FallbackCoordinates, nearest.Center, 2, reg)
	if len(alts) != 2 {
		t.Fatalf("expected 2 alternatives, got %d", len(alts))
	}

	// From the center of Finland, Kuopio is closest after Jyväskylä,
	// then Helsinki.
	if alts[0].Center.Region != "Kuopio" {
		t.Fatalf("first alternative = %q, want Kuopio", alts[0].Center.Region)
	}
	if alts[1].Center.Region != "Helsinki" {
		t.Fatalf("second alternative = %q, want Helsinki", alts[1].Center.Region)
	}

	for i, alt := range alts {
		if alt.Center.Region == nearest.Center.Region {
			t.Fatal("alternatives must exclude the primary center")
		}
		if i > 0 && alts[i-1].DistanceKm > alt.DistanceKm {
			t.Fatal("alternatives not sorted by ascending distance")
		}
	}
}

func TestFindAlternativesTruncation(t *testing.T) {
	reg := testRegistry(t)
	primary, _ := reg.ByRegion("Helsinki")

	if alts := FindAlternatives(domain.FallbackCoordinates, primary, 10, reg); len(alts) != 4 {
		t.Fatalf("expected all 4 non-primary centers, got %d", len(alts))
	}
	if alts := FindAlternatives(domain.FallbackCoordinates, primary, 0, reg); len(alts) != 0 {
		t.Fatalf("expected no alternatives for count 0, got %d", len(alts))
	}
}
