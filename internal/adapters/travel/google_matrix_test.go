package travel

import (
	"context"
	"crisis-center-service/internal/domain"
	"crisis-center-service/internal/ports"
	"net/http"
	"net/http/httptest"
	"testing"
)

const drivingResponse = `{
	"status": "OK",
	"rows": [{
		"elements": [{
			"status": "OK",
			"duration": {"text": "3 hours 5 mins", "value": 11100},
			"distance": {"text": "271 km", "value": 271000}
		}]
	}]
}`

var (
	origin = domain.Coordinates{Lat: 60.1699, Lon: 24.9384}
	dest   = domain.Coordinates{Lat: 62.2426, Lon: 25.7475}
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient("test-key")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	c.baseURL = srv.URL

	return c
}

func TestEstimateSuccess(t *testing.T) {
	var gotMode string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMode = r.URL.Query().Get("mode")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(drivingResponse))
	})

	leg, err := c.Estimate(context.Background(), origin, dest, ports.ModeDriving)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotMode != "driving" {
		t.Fatalf("mode param = %q, want driving", gotMode)
	}
	if leg.DurationText != "3 hours 5 mins" {
		t.Fatalf("duration = %q", leg.DurationText)
	}
	if leg.DistanceText != "271 km" {
		t.Fatalf("distance = %q", leg.DistanceText)
	}
}

func TestEstimateElementFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"rows": [{"elements": [{"status": "ZERO_RESULTS"}]}]
		}`))
	})

	if _, err := c.Estimate(context.Background(), origin, dest, ports.ModeTransit); err == nil {
		t.Fatal("expected error for failed element")
	}
}

func TestEstimateAPIFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "REQUEST_DENIED", "rows": []}`))
	})

	if _, err := c.Estimate(context.Background(), origin, dest, ports.ModeDriving); err == nil {
		t.Fatal("expected error for api-level failure")
	}
}

func TestEstimateHTTPFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	})

	if _, err := c.Estimate(context.Background(), origin, dest, ports.ModeDriving); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}
