package handlers

import (
	"crisis-center-service/internal/api/dto"
	"crisis-center-service/internal/ports"
	"net/http"
)

const version = "1.0.0"

// HealthHandler reports liveness plus which collaborators are configured.
type HealthHandler struct {
	Registry           ports.CenterRegistry
	GeocodingAvailable bool
	TravelAvailable    bool
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	res := dto.HealthResponse{
		Status:                   "healthy",
		Version:                  version,
		GeocodingAvailable:       h.GeocodingAvailable,
		TravelEstimatesAvailable: h.TravelAvailable,
		CentersCount:             len(h.Registry.All()),
	}

	writeJSON(w, r, http.StatusOK, res)
}
