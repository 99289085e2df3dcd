package infra

import (
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/lungsod/zoning-backend/internal/app/appconfig"
	"github.com/lungsod/zoning-backend/internal/pkg/cache"
)

// CacheStore selects the cache backend. Redis is the default; the in-process
// backend exists for development setups without a Redis instance.
func CacheStore(conf *appconfig.Config, client *redis.Client) cache.Store {
	if conf.CacheBackend == "memory" {
		log.Info().Msg("infra: cache: using in-process memory backend")
		return cache.NewMemory()
	}
	return cache.NewRedis(client, "zoning")
}
