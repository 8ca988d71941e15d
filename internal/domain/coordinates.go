package domain

import "math"

// Immutable geographic coordinates in decimal degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// FallbackCoordinates is the geographic center of Finland, used as the
// resolved location whenever a city cannot be geocoded.
var FallbackCoordinates = Coordinates{Lat: 62.2426, Lon: 25.7475}

// Bounding box for accepting a geocoded point as being in Finland.
const (
	finlandMinLat = 59.0
	finlandMaxLat = 70.0
	finlandMinLon = 20.0
	finlandMaxLon = 32.0
)

const earthRadiusKm = 6371

// Valid reports whether the coordinates are within the legal
// latitude/longitude ranges.
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// InFinland reports whether the point lies inside the Finland bounding box.
func (c Coordinates) InFinland() bool {
	return c.Lat >= finlandMinLat && c.Lat <= finlandMaxLat &&
		c.Lon >= finlandMinLon && c.Lon <= finlandMaxLon
}

// DistanceKm computes the great-circle distance in kilometers between two
// points using the haversine formula. Symmetric, and zero for equal points.
func DistanceKm(a, b Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lon1 := a.Lon * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	lon2 := b.Lon * math.Pi / 180

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}
