package services

import (
	"context"
	"crisis-center-service/internal/domain"
	"crisis-center-service/internal/platform/obs"
	"crisis-center-service/internal/ports"
	"fmt"
	"strings"
	"time"
)

// Number of alternative centers returned when the caller does not configure
// one.
const DefaultAlternativeCount = 2

// LookupService composes the resolution pipeline: city -> coordinates ->
// nearest center + alternatives -> best-effort travel estimates. It owns the
// degrade-and-respond policy; the only errors it returns are the kinds in
// errors.go.
type LookupService struct {
	Registry         ports.CenterRegistry
	Resolver         *CityResolver
	Enricher         *TravelEnricher
	AlternativeCount int
	Metrics          *obs.Metrics
}

// FindNearestCenter produces the full resolution result for one lookup.
func (s *LookupService) FindNearestCenter(ctx context.Context, city string) (*domain.ResolutionResult, error) {
	loc, source, err := s.Resolver.Resolve(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("find nearest center: %w", err)
	}

	nearest, err := FindNearest(loc, s.Registry)
	if err != nil {
		return nil, fmt.Errorf("find nearest center: %w", err)
	}

	count := s.AlternativeCount
	if count <= 0 {
		count = DefaultAlternativeCount
	}
	alternatives := FindAlternatives(loc, nearest.Center, count, s.Registry)

	result := &domain.ResolutionResult{
		QueriedCity:  strings.TrimSpace(city),
		Location:     loc,
		Source:       source,
		Nearest:      nearest,
		Alternatives: alternatives,
		Timestamp:    time.Now().UTC(),
	}

	if s.Enricher.Enabled() {
		est := s.Enricher.Estimate(ctx, loc, nearest.Center.Coordinates())
		result.Travel = &est
	}

	s.Metrics.LookupResolved(string(source))
	return result, nil
}
