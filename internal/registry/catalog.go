package registry

import "crisis-center-service/internal/domain"

// BuiltinCenters is the fixed catalog of Finnish crisis centers. Region,
// name, phone and coordinates are published emergency contact data and are
// carried through verbatim.
func BuiltinCenters() []domain.CrisisCenter {
	return []domain.CrisisCenter{
		{
			Region:    "Helsinki",
			Name:      "Helsingin kriisikeskus",
			Phone:     "09 4135 0510",
			Latitude:  60.1699,
			Longitude: 24.9384,
			Hours: &domain.Hours{Weekly: map[string]string{
				"Monday":    "09:00-16:00",
				"Tuesday":   "09:00-16:00",
				"Wednesday": "09:00-16:00",
				"Thursday":  "09:00-16:00",
				"Friday":    "09:00-16:00",
			}},
			Languages: []string{"finnish", "swedish", "english"},
		},
		{
			Region:    "Jyväskylä",
			Name:      "Jyväskylän kriisikeskus Mobile",
			Phone:     "044 7888 470",
			Latitude:  62.2426,
			Longitude: 25.7475,
			Hours:     &domain.Hours{AlwaysOpen: true},
			Languages: []string{"finnish", "english"},
		},
		{
			Region:    "Kuopio",
			Name:      "Kuopion kriisikeskus",
			Phone:     "017 262 7733",
			Latitude:  62.8924,
			Longitude: 27.6782,
		},
		{
			Region:    "Oulu",
			Name:      "Oulun kriisikeskus",
			Phone:     "044 3690 500",
			Latitude:  65.0121,
			Longitude: 25.4651,
		},
		{
			Region:    "Rovaniemi",
			Name:      "Rovaniemen kriisikeskus",
			Phone:     "040 553 7508",
			Latitude:  66.5039,
			Longitude: 25.7294,
		},
	}
}
