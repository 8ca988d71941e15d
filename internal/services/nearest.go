package services

import (
	"crisis-center-service/internal/domain"
	"crisis-center-service/internal/ports"
	"fmt"
	"sort"
)

// FindNearest selects the center closest to loc under the great-circle
// metric. When two centers are equidistant the first one in registry
// iteration order wins, keeping results deterministic.
func FindNearest(loc domain.Coordinates, reg ports.CenterRegistry) (domain.RankedCenter, error) {
	centers := reg.All()
	if len(centers) == 0 {
		return domain.RankedCenter{}, fmt.Errorf("find nearest: %w", ErrRegistryUnavailable)
	}

	best := domain.RankedCenter{
		Center:     centers[0],
		DistanceKm: domain.DistanceKm(loc, centers[0].Coordinates()),
	}
	for _, c := range centers[1:] {
		d := domain.DistanceKm(loc, c.Coordinates())
		// Strict comparison preserves registry order on ties.
		if d < best.DistanceKm {
			best = domain.RankedCenter{Center: c, DistanceKm: d}
		}
	}

	return best, nil
}

// FindAlternatives ranks every center except the primary by ascending
// distance from loc, truncated to count. The primary is excluded by region
// key identity.
func FindAlternatives(loc domain.Coordinates, primary domain.CrisisCenter, count int, reg ports.CenterRegistry) []domain.RankedCenter {
	if count <= 0 {
		return []domain.RankedCenter{}
	}

	centers := reg.All()
	ranked := make([]domain.RankedCenter, 0, len(centers))
	for _, c := range centers {
		if c.Region == primary.Region {
			continue
		}
		ranked = append(ranked, domain.RankedCenter{
			Center:     c,
			DistanceKm: domain.DistanceKm(loc, c.Coordinates()),
		})
	}

	// Stable sort keeps registry order for equidistant centers.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	if len(ranked) > count {
		ranked = ranked[:count]
	}
	return ranked
}
