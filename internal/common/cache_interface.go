package common

import "time"

// Cache key prefixes for catalog snapshots.
const (
	CacheKeyPilots     = "catalog:pilots"
	CacheKeyCategories = "catalog:categories"
	CacheKeyAircraft   = "catalog:aircraft"
	CacheKeyPurposes   = "catalog:purposes"
)

// CacheInterface defines the contract for cache implementations
type CacheInterface interface {
	// Set stores a value in cache with the given key and duration
	Set(key string, value interface{}, duration time.Duration)

	// Get retrieves a value from cache by key
	// Returns the value and true if found, nil and false otherwise
	Get(key string) (interface{}, bool)

	// GetInto retrieves a value by key and decodes it into target, which must
	// be a pointer to the cached type. Returns false on a miss or when the
	// cached value cannot be decoded into target.
	GetInto(key string, target any) bool

	// Delete removes a value from cache by key
	Delete(key string)

	// Close closes any underlying connections (for Redis, etc.)
	Close() error
}
