package travel

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

// Client implements the TravelEstimator port using the Google Distance
// Matrix API. One mode per call; the caller decides which modes to query and
// how their failures combine. Safe for concurrent use.
type Client struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewClient(apiKey string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("distance matrix: api key is empty")
	}

	return &Client{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://maps.googleapis.com/maps/api",
	}, nil
}

type matrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Duration struct {
				Text string `json:"text"`
			} `json:"duration"`
			Distance struct {
				Text string `json:"text"`
			} `json:"distance"`
		} `json:"elements"`
	} `json:"rows"`
}

// Estimate fetches a single 1x1 matrix cell for the given mode and returns
// its human-readable duration and distance.
func (c *Client) Estimate(ctx context.Context, origin, dest domain.Coordinates, mode ports.TravelMode) (_ ports.TravelLeg, err error) {
	defer obs.Time(ctx, "google.DistanceMatrix")(&err)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/distancematrix/json", nil)
	if err != nil {
		return ports.TravelLeg{}, fmt.Errorf("distance matrix: create request: %w", err)
	}

	q := req.URL.Query()
	q.Set("origins", fmt.Sprintf("%.6f,%.6f", origin.Lat, origin.Lon))
	q.Set("destinations", fmt.Sprintf("%.6f,%.6f", dest.Lat, dest.Lon))
	q.Set("mode", string(mode))
	q.Set("key", c.apiKey)
	req.URL.RawQuery = q.Encode()

	resp, err := c.session.Do(req)
	if err != nil {
		return ports.TravelLeg{}, fmt.Errorf("distance matrix: execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return ports.TravelLeg{}, fmt.Errorf(
			"distance matrix: unexpected status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(body)),
		)
	}

	var decoded matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.TravelLeg{}, fmt.Errorf("distance matrix: decode response: %w", err)
	}

	if decoded.Status != "OK" {
		return ports.TravelLeg{}, fmt.Errorf("distance matrix: api status %s", decoded.Status)
	}
	if len(decoded.Rows) != 1 || len(decoded.Rows[0].Elements) != 1 {
		return ports.TravelLeg{}, fmt.Errorf(
			"distance matrix: expected a 1x1 result, got %d rows",
			len(decoded.Rows),
		)
	}

	element := decoded.Rows[0].Elements[0]
	if element.Status != "OK" {
		return ports.TravelLeg{}, fmt.Errorf("distance matrix: element status %s for mode %s", element.Status, mode)
	}

	return ports.TravelLeg{
		DurationText: element.Duration.Text,
		DistanceText: element.Distance.Text,
	}, nil
}
