package dto

import (
	"crisis-center-service/internal/domain"
	"math"
	"time"
)

// Emergency numbers attached to every response, errors included, so they
// stay visible even when the service degrades.
const (
	NationalCrisisLine = "09 25250111"
	EmergencyNumber    = "112"
)

type EmergencyContacts struct {
	NationalCrisisLine string `json:"national_crisis_line"`
	EmergencyNumber    string `json:"emergency_number"`
}

func NewEmergencyContacts() EmergencyContacts {
	return EmergencyContacts{
		NationalCrisisLine: NationalCrisisLine,
		EmergencyNumber:    EmergencyNumber,
	}
}

type CoordinatesResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type RankedCenterResponse struct {
	CenterResponse
	DistanceKm float64 `json:"distance_km"`
}

type ModeEstimateResponse struct {
	Duration  string `json:"duration"`
	Distance  string `json:"distance"`
	Available bool   `json:"available"`
}

type TravelEstimateResponse struct {
	Driving ModeEstimateResponse `json:"driving"`
	Transit ModeEstimateResponse `json:"transit"`
}

type FindNearestResponse struct {
	QueriedCity        string                  `json:"queried_city"`
	Coordinates        CoordinatesResponse     `json:"coordinates"`
	CoordinatesSource  string                  `json:"coordinates_source"`
	NearestCenter      RankedCenterResponse    `json:"nearest_center"`
	AlternativeCenters []RankedCenterResponse  `json:"alternative_centers"`
	TravelEstimates    *TravelEstimateResponse `json:"travel_estimates,omitempty"`
	EmergencyContacts  EmergencyContacts       `json:"emergency_contacts"`
	Timestamp          time.Time               `json:"timestamp"`
}

func NewFindNearestResponse(res *domain.ResolutionResult) FindNearestResponse {
	out := FindNearestResponse{
		QueriedCity: res.QueriedCity,
		Coordinates: CoordinatesResponse{
			Latitude:  res.Location.Lat,
			Longitude: res.Location.Lon,
		},
		CoordinatesSource:  string(res.Source),
		NearestCenter:      newRankedCenterResponse(res.Nearest),
		AlternativeCenters: make([]RankedCenterResponse, 0, len(res.Alternatives)),
		EmergencyContacts:  NewEmergencyContacts(),
		Timestamp:          res.Timestamp,
	}

	for _, alt := range res.Alternatives {
		out.AlternativeCenters = append(out.AlternativeCenters, newRankedCenterResponse(alt))
	}

	if res.Travel != nil {
		out.TravelEstimates = &TravelEstimateResponse{
			Driving: newModeEstimateResponse(res.Travel.Driving),
			Transit: newModeEstimateResponse(res.Travel.Transit),
		}
	}

	return out
}

func newRankedCenterResponse(rc domain.RankedCenter) RankedCenterResponse {
	return RankedCenterResponse{
		CenterResponse: NewCenterResponse(rc.Center),
		DistanceKm:     roundKm(rc.DistanceKm),
	}
}

func newModeEstimateResponse(m domain.ModeEstimate) ModeEstimateResponse {
	return ModeEstimateResponse{
		Duration:  m.Duration,
		Distance:  m.Distance,
		Available: m.Available,
	}
}

// Distances are user-facing; two decimals match the original API.
func roundKm(km float64) float64 {
	return math.Round(km*100) / 100
}
