package cache

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

func NewSet[T any](store Store, prefix string) *Set[T] {
	return &Set[T]{
		store:  store,
		prefix: prefix,
	}
}

// Set is a typed view over a Store for one entity. Keys are scoped as
// `{prefix}_{key}`, e.g. `zones_caloocan`.
type Set[T any] struct {
	// m is a mutex for MutexGetSet for concurrent prevention
	m sync.Mutex

	store  Store
	prefix string
}

func (c *Set[T]) key(key string) string {
	return c.prefix + "_" + key
}

func (c *Set[T]) Get(key string, dest *T) error {
	return c.store.Get(c.key(key), dest)
}

func (c *Set[T]) Set(key string, value T, ttl time.Duration) error {
	return c.store.Set(c.key(key), value, ttl)
}

// MutexGetSet gets value from cache and writes to dest, or if the key does not exist,
// it executes valueFunc to produce the value when serially dispatched, sets it to cache
// and writes it to dest. The value is only stored after valueFunc returns successfully,
// so a failed producer never leaves a partial entry behind.
// The first return value reports whether the value was calculated: true means valueFunc
// ran; false means the value came from cache.
func (c *Set[T]) MutexGetSet(key string, dest *T, valueFunc func() (T, error), ttl time.Duration) (bool, error) {
	err := c.Get(key, dest)
	if err == nil {
		return false, nil
	} else if !errors.Is(err, ErrNotFound) {
		log.Error().Err(err).Str("key", c.key(key)).Msg("failed to get value from cache in MutexGetSet")
		return false, err
	}
	// onwards, cache key does not exist

	return true, c.slowMutexGetSet(key, dest, valueFunc, ttl)
}

func (c *Set[T]) slowMutexGetSet(key string, dest *T, valueFunc func() (T, error), ttl time.Duration) error {
	c.m.Lock()
	defer c.m.Unlock()
	err := c.Get(key, dest)

	if err == nil {
		return nil
	} else if !errors.Is(err, ErrNotFound) {
		log.Error().Err(err).Str("key", c.key(key)).Msg("failed to get value from cache in MutexGetSet inner check")
		return err
	}

	value, err := valueFunc()
	if err != nil {
		return err
	}

	err = c.Set(key, value, ttl)
	if err != nil {
		log.Error().Err(err).Str("key", c.key(key)).Msg("failed to set value to cache in MutexGetSet")
		return err
	}

	*dest = value

	return nil
}

func (c *Set[T]) Delete(key string) error {
	return c.store.Delete(c.key(key))
}
