// Package cache provides the caching layer shared by the CLI and the API
// server.
//
// A [Cache] stores opaque byte blobs under string keys with optional
// expiration. Backends cover the deployment spectrum: [FileCache] for the
// CLI (persists across runs), [MemoryCache] for a single server process,
// [RedisCache] for fleets sharing one cache, and [NullCache] to disable
// caching entirely.
//
// Keys are derived by a [Keyer]. The pipeline caches two artifact classes:
// parsed entity graphs keyed by the scan fingerprint, and rendered outputs
// keyed by the graph hash plus render options. Both keys are content
// derived, so entries never serve stale data; TTLs exist to bound storage,
// not for coherence.
package cache

import (
	"context"
	"time"
)

// Cache lifetimes per artifact class.
const (
	// TTLGraph applies to parsed entity graphs.
	TTLGraph = 24 * time.Hour
	// TTLRender applies to rendered artifacts (diagrams, DOT, SVG).
	TTLRender = 72 * time.Hour
)

// Cache is the storage interface implemented by all backends.
type Cache interface {
	// Get returns the data stored under key and whether it was present.
	// A miss is (nil, false, nil); errors are reserved for backend failures.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A non-positive ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the backend.
	Close() error
}
