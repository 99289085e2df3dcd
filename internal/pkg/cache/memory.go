package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"github.com/vmihailenco/msgpack/v5"
)

func NewMemory() *Memory {
	return &Memory{
		c: gocache.New(gocache.NoExpiration, time.Minute*10),
	}
}

// Memory is an in-process Store used by tests and in dev mode when no Redis
// instance is around. Values go through the same msgpack codec as the Redis
// store so both backends have identical marshaling semantics.
type Memory struct {
	c *gocache.Cache
}

var _ Store = (*Memory)(nil)

func (c *Memory) Get(key string, dest interface{}) error {
	result, ok := c.c.Get(key)
	if !ok {
		return ErrNotFound
	}
	err := msgpack.Unmarshal(result.([]byte), dest)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to unmarshal value from msgpack")
		return err
	}
	return nil
}

func (c *Memory) Set(key string, value interface{}, ttl time.Duration) error {
	b, err := msgpack.Marshal(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to marshal value with msgpack")
		return err
	}
	c.c.Set(key, b, ttl)
	return nil
}

func (c *Memory) Delete(key string) error {
	c.c.Delete(key)
	return nil
}
