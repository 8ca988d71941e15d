package handlers

import (
	"crisis-center-service/internal/api/dto"
	"crisis-center-service/internal/services"
	"log"
	"net/http"
)

// LookupHandler exposes the nearest-center resolution endpoint.
type LookupHandler struct {
	Service *services.LookupService
}

func (h *LookupHandler) FindNearest(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")

	result, err := h.Service.FindNearestCenter(r.Context(), city)
	if err != nil {
		switch status := statusFor(err); status {
		case http.StatusBadRequest:
			writeError(w, r, status, "City parameter is required")
		case http.StatusServiceUnavailable:
			log.Printf("lookup unavailable city=%q err=%v", city, err)
			writeUnavailable(w, r, "Service temporarily unavailable")
		default:
			log.Printf("lookup failed city=%q err=%v", city, err)
			writeError(w, r, status, "internal server error")
		}
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewFindNearestResponse(result))
}
