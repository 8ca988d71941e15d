package registry

import (
	"crisis-center-service/internal/domain"
	"errors"
	"fmt"
	"strings"
)

// StaticRegistry is an in-memory, read-only implementation of the
// CenterRegistry port. It is built once at startup and never mutated, so it
// is safe for unlimited concurrent readers.
type StaticRegistry struct {
	centers []domain.CrisisCenter
}

// New validates the catalog and builds a registry from it. An empty catalog
// or invalid coordinates are configuration errors and fail startup.
func New(centers []domain.CrisisCenter) (*StaticRegistry, error) {
	if len(centers) == 0 {
		return nil, errors.New("center registry: catalog must not be empty")
	}

	seen := make(map[string]struct{}, len(centers))
	for i, c := range centers {
		if strings.TrimSpace(c.Region) == "" {
			return nil, fmt.Errorf("center registry: center #%d has empty region", i+1)
		}
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("center registry: center %q has empty name", c.Region)
		}
		if strings.TrimSpace(c.Phone) == "" {
			return nil, fmt.Errorf("center registry: center %q has empty phone", c.Region)
		}
		if !c.Coordinates().Valid() {
			return nil, fmt.Errorf(
				"center registry: center %q has invalid coordinates (%f, %f)",
				c.Region, c.Latitude, c.Longitude,
			)
		}

		key := strings.ToLower(c.Region)
		if _, ok := seen[key]; ok {
			return nil, fmt.Errorf("center registry: duplicate region %q", c.Region)
		}
		seen[key] = struct{}{}
	}

	// Copy so later mutation of the caller's slice cannot reach the registry.
	owned := make([]domain.CrisisCenter, len(centers))
	copy(owned, centers)

	return &StaticRegistry{centers: owned}, nil
}

// All returns the catalog in its fixed iteration order.
func (r *StaticRegistry) All() []domain.CrisisCenter {
	out := make([]domain.CrisisCenter, len(r.centers))
	copy(out, r.centers)
	return out
}

// ByRegion performs a case-insensitive exact match on the region key.
func (r *StaticRegistry) ByRegion(region string) (domain.CrisisCenter, bool) {
	region = strings.TrimSpace(region)
	for _, c := range r.centers {
		if strings.EqualFold(c.Region, region) {
			return c, true
		}
	}
	return domain.CrisisCenter{}, false
}

// Search returns all centers whose region contains the substring,
// case-insensitively, in catalog order.
func (r *StaticRegistry) Search(substring string) []domain.CrisisCenter {
	needle := strings.ToLower(strings.TrimSpace(substring))

	out := make([]domain.CrisisCenter, 0, len(r.centers))
	for _, c := range r.centers {
		if strings.Contains(strings.ToLower(c.Region), needle) {
			out = append(out, c)
		}
	}
	return out
}

func (r *StaticRegistry) Len() int { return len(r.centers) }
