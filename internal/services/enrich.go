package services

import (
	"context"
	"crisis-center-service/internal/domain"
	"crisis-center-service/internal/platform/obs"
	"crisis-center-service/internal/ports"
	"fmt"
	"log"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// TravelEnricher augments a resolution result with best-effort travel
// estimates. Each mode is queried independently under its own deadline, so a
// driving-mode outage cannot touch the transit answer, and a total outage
// degrades the response without blocking it.
type TravelEnricher struct {
	estimator ports.TravelEstimator
	timeout   time.Duration
	metrics   *obs.Metrics
	// Estimates are time-sensitive, so successful answers are only kept
	// for a short TTL.
	cache *gocache.Cache
}

func NewTravelEnricher(estimator ports.TravelEstimator, timeout time.Duration, metrics *obs.Metrics) *TravelEnricher {
	return &TravelEnricher{
		estimator: estimator,
		timeout:   timeout,
		metrics:   metrics,
		cache:     gocache.New(5*time.Minute, 10*time.Minute),
	}
}

// Enabled reports whether a distance-matrix collaborator is configured.
func (e *TravelEnricher) Enabled() bool {
	return e != nil && e.estimator != nil
}

// Estimate queries driving and transit independently. Modes that fail come
// back as the "unavailable" sentinel; the straight-line distance computed
// elsewhere stays authoritative either way.
func (e *TravelEnricher) Estimate(ctx context.Context, origin, dest domain.Coordinates) domain.TravelEstimate {
	return domain.TravelEstimate{
		Driving: e.mode(ctx, origin, dest, ports.ModeDriving),
		Transit: e.mode(ctx, origin, dest, ports.ModeTransit),
	}
}

func (e *TravelEnricher) mode(parent context.Context, origin, dest domain.Coordinates, mode ports.TravelMode) domain.ModeEstimate {
	key := fmt.Sprintf("%.4f,%.4f|%.4f,%.4f|%s", origin.Lat, origin.Lon, dest.Lat, dest.Lon, mode)
	if cached, ok := e.cache.Get(key); ok {
		if est, ok := cached.(domain.ModeEstimate); ok {
			e.metrics.TravelOutcome(string(mode), "cached")
			return est
		}
	}

	var leg ports.TravelLeg
	err := callBounded(parent, e.timeout, func(ctx context.Context) error {
		var callErr error
		leg, callErr = e.estimator.Estimate(ctx, origin, dest, mode)
		return callErr
	})
	if err != nil {
		log.Printf("travel estimate failed mode=%s err=%v", mode, err)
		e.metrics.TravelOutcome(string(mode), "error")
		return domain.UnavailableEstimate()
	}

	est := domain.ModeEstimate{
		Duration:  leg.DurationText,
		Distance:  leg.DistanceText,
		Available: true,
	}
	// Only successful estimates are cached; failures should be retried on
	// the next request.
	e.cache.Set(key, est, gocache.DefaultExpiration)

	e.metrics.TravelOutcome(string(mode), "success")
	return est
}
