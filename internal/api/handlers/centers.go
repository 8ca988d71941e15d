package handlers

import (
	"crisis-center-service/internal/api/dto"
	"crisis-center-service/internal/ports"
	"net/http"
)

// CenterHandler exposes read-only catalog endpoints.
type CenterHandler struct {
	Registry ports.CenterRegistry
}

func (h *CenterHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.NewListCentersResponse(h.Registry.All()))
}

func (h *CenterHandler) Search(w http.ResponseWriter, r *http.Request) {
	region := r.URL.Query().Get("region")
	if region == "" {
		writeError(w, r, http.StatusBadRequest, "region parameter is required")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewListCentersResponse(h.Registry.Search(region)))
}

func (h *CenterHandler) Get(w http.ResponseWriter, r *http.Request) {
	region := r.PathValue("region")

	center, ok := h.Registry.ByRegion(region)
	if !ok {
		writeError(w, r, http.StatusNotFound, "Center not found")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewCenterResponse(center))
}
