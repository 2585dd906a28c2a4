package mapview

import "context"

// GeocodeCacheRepo defines the interface for the reverse-geocode result
// cache, keyed by the exact "lat,lng" coordinate string.
type GeocodeCacheRepo interface {
	// Get returns the cached address for a coordinate key, with found=false
	// on a miss.
	Get(ctx context.Context, key string) (address string, found bool, err error)

	// Set stores a resolved address for a coordinate key.
	Set(ctx context.Context, key, address string) error
}
