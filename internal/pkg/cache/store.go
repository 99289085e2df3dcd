package cache

import (
	"time"

	"github.com/pkg/errors"
)

// ErrNotFound is returned by Get when a key is absent or expired.
var ErrNotFound = errors.New("cache: key not found")

// Store is a key/value cache with TTL expiry and explicit eviction.
// Implementations serialize values with msgpack so a populated entry reads
// back identically regardless of the backend.
type Store interface {
	Get(key string, dest interface{}) error
	Set(key string, value interface{}, ttl time.Duration) error

	// Delete evicts a key. Evicting an absent key is a no-op, not an error.
	Delete(key string) error
}
