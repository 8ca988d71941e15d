package domain

import "time"

// CoordinateSource tags how a city was resolved to coordinates so callers can
// tell a precise answer from an approximate one.
type CoordinateSource string

const (
	SourceGeocoded CoordinateSource = "geocoded"
	SourceFallback CoordinateSource = "fallback"
)

// A crisis center paired with its great-circle distance from the resolved
// location.
type RankedCenter struct {
	Center     CrisisCenter
	DistanceKm float64
}

// Best-effort travel figures for a single mode. When a collaborator call
// fails, the textual fields carry the "unavailable" sentinel and Available
// is false.
type ModeEstimate struct {
	Duration  string
	Distance  string
	Available bool
}

// Unavailable is the sentinel value for a travel mode whose estimate could
// not be obtained.
const Unavailable = "unavailable"

func UnavailableEstimate() ModeEstimate {
	return ModeEstimate{Duration: Unavailable, Distance: Unavailable}
}

// Travel estimates per mode. The modes fail independently; one being
// unavailable says nothing about the other.
type TravelEstimate struct {
	Driving ModeEstimate
	Transit ModeEstimate
}

// Represents the full answer to one lookup request. It is request-scoped
// planning data and is discarded once the response has been written.
type ResolutionResult struct {
	QueriedCity  string
	Location     Coordinates
	Source       CoordinateSource
	Nearest      RankedCenter
	Alternatives []RankedCenter
	Travel       *TravelEstimate
	Timestamp    time.Time
}
