package service

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/lungsod/zoning-backend/internal/constant"
	"github.com/lungsod/zoning-backend/internal/model"
	"github.com/lungsod/zoning-backend/internal/model/cache"
	"github.com/lungsod/zoning-backend/internal/pkg/zmerr"
	"github.com/lungsod/zoning-backend/internal/repo"
)

// Export assembles the aggregated per-city snapshot. The producer queries
// persistence directly instead of composing the per-entity caches, so a
// snapshot is internally consistent at assembly time.
type Export struct {
	ZoneRepo     ZoneRepo
	ZoneTypeRepo ZoneTypeRepo
	RegionRepo   RegionRepo
	Caches       *cache.Caches
}

func NewExport(zoneRepo *repo.Zone, zoneTypeRepo *repo.ZoneType, regionRepo *repo.Region, caches *cache.Caches) *Export {
	return &Export{
		ZoneRepo:     zoneRepo,
		ZoneTypeRepo: zoneTypeRepo,
		RegionRepo:   regionRepo,
		Caches:       caches,
	}
}

// Cache: export_{cityId}, 10 mins. Assembly is all-or-nothing: on any
// persistence failure the whole export fails and nothing is cached.
func (s *Export) Export(ctx context.Context, cityID string) (*model.ExportSnapshot, error) {
	var snapshot model.ExportSnapshot
	_, err := s.Caches.ExportByCityID.MutexGetSet(cityID, &snapshot, func() (model.ExportSnapshot, error) {
		return s.assemble(ctx, cityID)
	}, constant.CacheTTLExport)
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (s *Export) assemble(ctx context.Context, cityID string) (model.ExportSnapshot, error) {
	zones, err := s.ZoneRepo.GetZonesByCityID(ctx, cityID)
	if err != nil {
		return model.ExportSnapshot{}, zmerr.ErrUnavailable.Msg("failed to assemble export snapshot: %s", err)
	}
	zoneTypes, err := s.ZoneTypeRepo.GetZoneTypesByCityID(ctx, cityID)
	if err != nil {
		return model.ExportSnapshot{}, zmerr.ErrUnavailable.Msg("failed to assemble export snapshot: %s", err)
	}
	regions, err := s.RegionRepo.GetRegionsByCityID(ctx, cityID)
	if err != nil {
		return model.ExportSnapshot{}, zmerr.ErrUnavailable.Msg("failed to assemble export snapshot: %s", err)
	}

	return model.ExportSnapshot{
		CityID:         cityID,
		ExportedAt:     time.Now().Format(time.RFC3339),
		TotalZones:     len(zones),
		TotalZoneTypes: len(zoneTypes),
		TotalRegions:   len(regions),
		Zones:          lo.Ternary(zones != nil, zones, make([]*model.Zone, 0)),
		ZoneTypes:      lo.Ternary(zoneTypes != nil, zoneTypes, make([]*model.ZoneType, 0)),
		Regions:        lo.Ternary(regions != nil, regions, make([]*model.Region, 0)),
	}, nil
}
