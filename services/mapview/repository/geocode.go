package repository

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/prasongk/fleetview/internal/pkg/database"
)

// geocodeKeyPrefix namespaces geocode cache entries in Redis.
const geocodeKeyPrefix = "geocode:"

// GeocodeRepository is a Redis-backed reverse-geocode cache. Entries have no
// expiration; the key space is bounded by the coordinates actually visited
// by selected vehicles.
type GeocodeRepository struct {
	redisClient *database.RedisClient
}

// NewGeocodeRepository creates a new Redis geocode cache
func NewGeocodeRepository(redisClient *database.RedisClient) *GeocodeRepository {
	return &GeocodeRepository{redisClient: redisClient}
}

// Get returns the cached address for a coordinate key.
func (r *GeocodeRepository) Get(ctx context.Context, key string) (string, bool, error) {
	addr, err := r.redisClient.Get(ctx, geocodeKeyPrefix+key)
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get geocode cache entry: %w", err)
	}
	return addr, true, nil
}

// Set stores a resolved address for a coordinate key.
func (r *GeocodeRepository) Set(ctx context.Context, key, address string) error {
	if err := r.redisClient.Set(ctx, geocodeKeyPrefix+key, address, 0); err != nil {
		return fmt.Errorf("failed to set geocode cache entry: %w", err)
	}
	return nil
}
