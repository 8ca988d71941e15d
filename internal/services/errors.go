package services

import "errors"

// Error kinds surfaced to the HTTP layer. Everything else the pipeline can
// run into (geocoding outages, travel estimate failures) is recovered locally
// and never escapes as an error.
var (
	// The caller supplied a missing or empty city.
	ErrInvalidInput = errors.New("invalid input")

	// No center matches the requested region key.
	ErrCenterNotFound = errors.New("center not found")

	// The center catalog is unusable. Startup validation makes this
	// unreachable in practice; it exists so a categorical outage still maps
	// to a well-formed 503.
	ErrRegistryUnavailable = errors.New("center registry unavailable")
)
