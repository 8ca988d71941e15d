package dto

import "crisis-center-service/internal/domain"

type HoursResponse struct {
	AlwaysOpen bool              `json:"always_open,omitempty"`
	Weekly     map[string]string `json:"weekly,omitempty"`
}

type CenterResponse struct {
	Region    string         `json:"region"`
	Name      string         `json:"name"`
	Phone     string         `json:"phone"`
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Hours     *HoursResponse `json:"hours,omitempty"`
	Languages []string       `json:"languages,omitempty"`
}

type ListCentersResponse struct {
	Centers           []CenterResponse  `json:"centers"`
	Count             int               `json:"count"`
	EmergencyContacts EmergencyContacts `json:"emergency_contacts"`
}

func NewCenterResponse(c domain.CrisisCenter) CenterResponse {
	res := CenterResponse{
		Region:    c.Region,
		Name:      c.Name,
		Phone:     c.Phone,
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
		Languages: c.Languages,
	}
	if c.Hours != nil {
		res.Hours = &HoursResponse{AlwaysOpen: c.Hours.AlwaysOpen, Weekly: c.Hours.Weekly}
	}
	return res
}

func NewListCentersResponse(centers []domain.CrisisCenter) ListCentersResponse {
	res := ListCentersResponse{
		Centers:           make([]CenterResponse, 0, len(centers)),
		Count:             len(centers),
		EmergencyContacts: NewEmergencyContacts(),
	}
	for _, c := range centers {
		res.Centers = append(res.Centers, NewCenterResponse(c))
	}
	return res
}
