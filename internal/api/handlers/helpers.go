package handlers

import (
	"crisis-center-service/internal/api/dto"
	"crisis-center-service/internal/services"
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

// Every error body carries the emergency contact numbers; a degraded answer
// must still tell the caller who to phone.
type errorResponse struct {
	Error             string                `json:"error"`
	Fallback          string                `json:"fallback,omitempty"`
	EmergencyContacts dto.EmergencyContacts `json:"emergency_contacts"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, errorResponse{
		Error:             msg,
		EmergencyContacts: dto.NewEmergencyContacts(),
	})
}

func writeUnavailable(w http.ResponseWriter, r *http.Request, msg string) {
	writeJSON(w, r, http.StatusServiceUnavailable, errorResponse{
		Error:             msg,
		Fallback:          "Call the national crisis line " + dto.NationalCrisisLine + " (24/7), or 112 in an emergency.",
		EmergencyContacts: dto.NewEmergencyContacts(),
	})
}

// Error-kind -> HTTP status mapping, consulted in one place at the handler
// boundary.
var statusByKind = []struct {
	kind   error
	status int
}{
	{services.ErrInvalidInput, http.StatusBadRequest},
	{services.ErrCenterNotFound, http.StatusNotFound},
	{services.ErrRegistryUnavailable, http.StatusServiceUnavailable},
}

func statusFor(err error) int {
	for _, entry := range statusByKind {
		if errors.Is(err, entry.kind) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}
