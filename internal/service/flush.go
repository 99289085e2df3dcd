package service

import (
	"github.com/rs/zerolog/log"
)

type flusher interface {
	Delete(key string) error
}

// evictAfterWrite runs only after the persistence write has committed. A
// failed eviction is logged and swallowed: the stale entry self-heals once
// its TTL expires, whereas failing the whole request would report a write
// that in fact succeeded.
func evictAfterWrite(entity string, cityID string, flushers ...flusher) {
	for _, f := range flushers {
		if err := f.Delete(cityID); err != nil {
			log.Warn().
				Err(err).
				Str("evt.name", "cache.evict.failed").
				Str("entity", entity).
				Str("cityId", cityID).
				Msg("failed to evict cache after write; entry will expire by TTL")
		}
	}
}
