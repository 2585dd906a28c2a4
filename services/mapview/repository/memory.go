package repository

import (
	"context"
	"sync"
)

// MemoryGeocodeRepository is an in-process geocode cache with the same
// contract as the Redis one. Used when Redis is not configured, and by tests
// that need isolated caches.
type MemoryGeocodeRepository struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryGeocodeRepository creates an empty in-memory geocode cache
func NewMemoryGeocodeRepository() *MemoryGeocodeRepository {
	return &MemoryGeocodeRepository{entries: make(map[string]string)}
}

// Get returns the cached address for a coordinate key.
func (r *MemoryGeocodeRepository) Get(ctx context.Context, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	addr, found := r.entries[key]
	return addr, found, nil
}

// Set stores a resolved address for a coordinate key.
func (r *MemoryGeocodeRepository) Set(ctx context.Context, key, address string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = address
	return nil
}

// Len returns the number of cached entries.
func (r *MemoryGeocodeRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
