package dto

type HealthResponse struct {
	Status                   string `json:"status"`
	Version                  string `json:"version"`
	GeocodingAvailable       bool   `json:"geocoding_available"`
	TravelEstimatesAvailable bool   `json:"travel_estimates_available"`
	CentersCount             int    `json:"centers_count"`
}
