package ports

import "crisis-center-service/internal/domain"

// Port: read-only access to the crisis center catalog. Implementations must
// be safe for unlimited concurrent readers; there are no writers at runtime.
type CenterRegistry interface {
	// All centers in stable iteration order.
	All() []domain.CrisisCenter
	// Case-insensitive exact match on the region key.
	ByRegion(region string) (domain.CrisisCenter, bool)
	// Case-insensitive substring match over region names.
	Search(substring string) []domain.CrisisCenter
}
