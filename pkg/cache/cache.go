package cache

import (
	"context"
	"time"
)

// Cache is the contract for the caching layer. Implementations must treat a
// missing key as a miss, not an error.
type Cache interface {
	// Get loads the value stored under key into dest.
	// Returns found=false on a cache miss; dest is untouched in that case.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies the connection.
	Ping(ctx context.Context) error
}
