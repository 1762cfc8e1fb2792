package ports

import (
	"context"
	"strings"
)

// CacheKey is a structured cache key: an operation tag plus its typed
// parameters. It replaces ad hoc string concatenation so keys from different
// operations can never collide and tests can assert on exact keys.
type CacheKey struct {
	Op    string
	Parts []string
}

// NewCacheKey builds a key for an operation and its parameters.
func NewCacheKey(op string, parts ...string) CacheKey {
	return CacheKey{Op: op, Parts: parts}
}

// String renders the key deterministically as "op:part:part".
func (k CacheKey) String() string {
	if len(k.Parts) == 0 {
		return k.Op
	}
	return k.Op + ":" + strings.Join(k.Parts, ":")
}

// Cache is the read-through cache used by query handlers and maintained by
// command handlers.
//
// Consistency contract: writes keep single-entity keys exact. A create or
// update overwrites the entity's key, a delete evicts it. Paginated and
// aggregate keys are NOT selectively invalidated on writes; they may serve
// stale results until their TTL expires.
//
// Cache failures must never fail the underlying operation; implementations
// log and degrade to the backing store.
type Cache interface {
	// Get looks up key and decodes the cached value into dest.
	// Returns false on a miss.
	Get(ctx context.Context, key CacheKey, dest any) (bool, error)

	// Set stores value under key with the configured TTL.
	Set(ctx context.Context, key CacheKey, value any) error

	// Delete evicts key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key CacheKey) error
}
