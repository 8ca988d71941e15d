package ports

import (
	"context"
	"crisis-center-service/internal/domain"
)

type TravelMode string

const (
	ModeDriving TravelMode = "driving"
	ModeTransit TravelMode = "transit"
)

// Human-readable travel figures for one origin/destination/mode triple,
// as produced by the distance-matrix collaborator.
type TravelLeg struct {
	DurationText string
	DistanceText string
}

// Port: a boundary for retrieving travel duration and distance estimates.
type TravelEstimator interface {
	// Return the estimate for a single mode. Implementations report any
	// collaborator failure as an error; callers own the degrade policy.
	Estimate(ctx context.Context, origin, dest domain.Coordinates, mode TravelMode) (TravelLeg, error)
}
