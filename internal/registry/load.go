package registry

import (
	"crisis-center-service/internal/domain"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type centerSeed struct {
	Region    string            `json:"region"`
	Name      string            `json:"name"`
	Phone     string            `json:"phone"`
	Latitude  float64           `json:"latitude"`
	Longitude float64           `json:"longitude"`
	Hours     *hoursSeed        `json:"hours,omitempty"`
	Languages []string          `json:"languages,omitempty"`
}

type hoursSeed struct {
	AlwaysOpen bool              `json:"always_open,omitempty"`
	Weekly     map[string]string `json:"weekly,omitempty"`
}

// LoadFromJSON reads a catalog override from a JSON file. Structural
// validation happens in New; this only rejects records that cannot even be
// represented.
func LoadFromJSON(jsonPath string) ([]domain.CrisisCenter, error) {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("load centers: read %q: %w", jsonPath, err)
	}

	var seeds []centerSeed
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return nil, fmt.Errorf("load centers: parse json: %w", err)
	}

	centers := make([]domain.CrisisCenter, 0, len(seeds))
	for i, s := range seeds {
		if strings.TrimSpace(s.Region) == "" {
			return nil, fmt.Errorf("load centers: item at index %d: region cannot be empty", i+1)
		}

		c := domain.CrisisCenter{
			Region:    s.Region,
			Name:      s.Name,
			Phone:     s.Phone,
			Latitude:  s.Latitude,
			Longitude: s.Longitude,
			Languages: s.Languages,
		}
		if s.Hours != nil {
			c.Hours = &domain.Hours{AlwaysOpen: s.Hours.AlwaysOpen, Weekly: s.Hours.Weekly}
		}
		centers = append(centers, c)
	}

	return centers, nil
}
