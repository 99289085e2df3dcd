package cache

import (
	"github.com/lungsod/zoning-backend/internal/constant"
	"github.com/lungsod/zoning-backend/internal/model"
	"github.com/lungsod/zoning-backend/internal/pkg/cache"
)

// Caches is the typed cache registry for the zoning map, keyed by city id.
// It is built over a single injected store so services never touch global
// cache state and tests can substitute an in-memory backend.
type Caches struct {
	ZonesByCityID     *cache.Set[[]*model.Zone]
	ZoneTypesByCityID *cache.Set[[]*model.ZoneType]
	RegionsByCityID   *cache.Set[[]*model.Region]
	ExportByCityID    *cache.Set[model.ExportSnapshot]
}

func New(store cache.Store) *Caches {
	return &Caches{
		ZonesByCityID:     cache.NewSet[[]*model.Zone](store, constant.CacheKeyZones),
		ZoneTypesByCityID: cache.NewSet[[]*model.ZoneType](store, constant.CacheKeyZoneTypes),
		RegionsByCityID:   cache.NewSet[[]*model.Region](store, constant.CacheKeyRegions),
		ExportByCityID:    cache.NewSet[model.ExportSnapshot](store, constant.CacheKeyExport),
	}
}
