// Package cache stores resolved results so that re-running squared on an
// unchanged document skips resolution.
//
// Three backends implement [Cache]:
//
//   - [NullCache]: stores nothing, used with --no-cache
//   - [FileCache]: JSON entries under the XDG cache directory (CLI default)
//   - [RedisCache]: shared cache for teams and CI runners
//
// Keys come from a [Keyer] so that callers never build key strings by hand.
// [ScopedKeyer] prefixes keys to give different projects separate
// namespaces inside one backend.
package cache

import (
	"context"
	"time"
)

// TTLs for cached entries.
const (
	// ResultTTL bounds how long a resolved result stays cached. Results are
	// keyed by document content, so staleness only comes from code changes.
	ResultTTL = 7 * 24 * time.Hour

	// DocumentTTL bounds how long a normalized document stays cached.
	DocumentTTL = 24 * time.Hour
)

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the value for key and whether it was found. A miss is
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Clearer is implemented by caches that can drop every entry they own.
type Clearer interface {
	Clear(ctx context.Context) error
}

// NullCache is a no-op cache that never stores anything.
type NullCache struct{}

// NewNullCache creates a null cache.
func NewNullCache() Cache {
	return NullCache{}
}

// Get always reports a miss.
func (NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

// Set discards data.
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

// Delete does nothing.
func (NullCache) Delete(context.Context, string) error { return nil }

// Clear does nothing.
func (NullCache) Clear(context.Context) error { return nil }

// Close does nothing.
func (NullCache) Close() error { return nil }

var (
	_ Cache   = NullCache{}
	_ Clearer = NullCache{}
)
