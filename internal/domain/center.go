package domain

// Weekly availability of a crisis center. Either the center is reachable
// around the clock, or it keeps a schedule keyed by day name ("Monday") with
// a time range value ("09:00-16:00").
type Hours struct {
	AlwaysOpen bool
	Weekly     map[string]string
}

// Represents a single crisis center. The record is read-only at request time;
// region, name, phone and coordinates are user-facing emergency contact data
// and must be carried through unchanged.
type CrisisCenter struct {
	Region    string
	Name      string
	Phone     string
	Latitude  float64
	Longitude float64
	Hours     *Hours
	Languages []string
}

func (c CrisisCenter) Coordinates() Coordinates {
	return Coordinates{Lat: c.Latitude, Lon: c.Longitude}
}
