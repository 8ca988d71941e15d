package geocode

import (
	"context"
	"crisis-center-service/internal/ports"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const helsinkiResponse = `{
	"status": "OK",
	"results": [{
		"geometry": {"location": {"lat": 60.1699, "lng": 24.9384}},
		"address_components": [
			{"short_name": "Helsinki", "types": ["locality", "political"]},
			{"short_name": "FI", "types": ["country", "political"]}
		]
	}]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient("test-key")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	c.baseURL = srv.URL

	return c, srv
}

func TestGeocodeSuccess(t *testing.T) {
	var gotQuery string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("address")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(helsinkiResponse))
	})

	res, err := c.Geocode(context.Background(), "Helsinki, Finland")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotQuery != "Helsinki, Finland" {
		t.Fatalf("address param = %q", gotQuery)
	}
	if res.Coordinates.Lat != 60.1699 || res.Coordinates.Lon != 24.9384 {
		t.Fatalf("coordinates = %v", res.Coordinates)
	}
	if res.CountryCode != "FI" {
		t.Fatalf("country = %q, want FI", res.CountryCode)
	}
}

func TestGeocodeZeroResults(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	})

	_, err := c.Geocode(context.Background(), "Nowhere, Finland")
	if !errors.Is(err, ports.ErrNoResults) {
		t.Fatalf("err = %v, want ErrNoResults", err)
	}
}

func TestGeocodeAPIError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "OVER_QUERY_LIMIT", "results": []}`))
	})

	_, err := c.Geocode(context.Background(), "Helsinki, Finland")
	if err == nil || errors.Is(err, ports.ErrNoResults) {
		t.Fatalf("err = %v, want a non-ErrNoResults failure", err)
	}
}

func TestGeocodeOKWithoutResults(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "OK", "results": []}`))
	})

	_, err := c.Geocode(context.Background(), "Nowhere, Finland")
	if !errors.Is(err, ports.ErrNoResults) {
		t.Fatalf("err = %v, want ErrNoResults", err)
	}
}

func TestGeocodeHTTPError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	})

	if _, err := c.Geocode(context.Background(), "Helsinki, Finland"); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestNewClientRequiresKey(t *testing.T) {
	if _, err := NewClient("  "); err == nil {
		t.Fatal("blank api key accepted")
	}
}
