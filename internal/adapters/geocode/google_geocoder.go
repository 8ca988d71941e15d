package geocode

import (
	"context"
	"crisis-center-service/internal/domain"
	"crisis-center-service/internal/platform/obs"
	"crisis-center-service/internal/ports"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client implements the Geocoder port using the Google Maps Geocoding API.
// Safe for concurrent use.
type Client struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewClient(apiKey string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("google geocoder: api key is empty")
	}

	return &Client{
		// The transport timeout is a backstop; callers pass tighter
		// per-request deadlines through ctx.
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://maps.googleapis.com/maps/api",
	}, nil
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		AddressComponents []struct {
			ShortName string   `json:"short_name"`
			Types     []string `json:"types"`
		} `json:"address_components"`
	} `json:"results"`
}

// Geocode resolves a free-text query to the first match's location and
// country code.
func (c *Client) Geocode(ctx context.Context, query string) (_ ports.GeocodeResult, err error) {
	defer obs.Time(ctx, "google.Geocode")(&err)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/geocode/json", nil)
	if err != nil {
		return ports.GeocodeResult{}, fmt.Errorf("geocode: create request: %w", err)
	}

	q := req.URL.Query()
	q.Set("address", query)
	q.Set("key", c.apiKey)
	req.URL.RawQuery = q.Encode()

	resp, err := c.session.Do(req)
	if err != nil {
		return ports.GeocodeResult{}, fmt.Errorf("geocode: execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return ports.GeocodeResult{}, fmt.Errorf(
			"geocode: unexpected status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(body)),
		)
	}

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.GeocodeResult{}, fmt.Errorf("geocode: decode response: %w", err)
	}

	// Status ordering matters: a failing API often returns empty results
	// too, and an outage must not be reported as "city not found".
	if decoded.Status == "ZERO_RESULTS" {
		return ports.GeocodeResult{}, fmt.Errorf("geocode %q: %w", query, ports.ErrNoResults)
	}
	if decoded.Status != "OK" {
		return ports.GeocodeResult{}, fmt.Errorf("geocode %q: api status %s", query, decoded.Status)
	}
	if len(decoded.Results) == 0 {
		return ports.GeocodeResult{}, fmt.Errorf("geocode %q: %w", query, ports.ErrNoResults)
	}

	first := decoded.Results[0]

	country := ""
	for _, comp := range first.AddressComponents {
		for _, t := range comp.Types {
			if t == "country" {
				country = comp.ShortName
			}
		}
	}

	return ports.GeocodeResult{
		Coordinates: domain.Coordinates{
			Lat: first.Geometry.Location.Lat,
			Lon: first.Geometry.Location.Lng,
		},
		CountryCode: country,
	}, nil
}
