package service

import (
	"context"
	"time"

	"github.com/lungsod/zoning-backend/internal/constant"
	"github.com/lungsod/zoning-backend/internal/model"
	"github.com/lungsod/zoning-backend/internal/model/cache"
	"github.com/lungsod/zoning-backend/internal/model/types"
	"github.com/lungsod/zoning-backend/internal/pkg/zmerr"
	"github.com/lungsod/zoning-backend/internal/repo"
)

type ZoneTypeRepo interface {
	GetZoneTypesByCityID(ctx context.Context, cityID string) ([]*model.ZoneType, error)
	GetZoneTypeByID(ctx context.Context, id int) (*model.ZoneType, error)
	ExistsZoneTypeName(ctx context.Context, name string, excludeID int) (bool, error)
	CreateZoneType(ctx context.Context, zoneType *model.ZoneType) error
	UpdateZoneType(ctx context.Context, zoneType *model.ZoneType) error
	DeleteZoneType(ctx context.Context, id int) error
}

type ZoneType struct {
	ZoneTypeRepo ZoneTypeRepo
	ZoneRepo     ZoneRepo
	Caches       *cache.Caches
}

func NewZoneType(zoneTypeRepo *repo.ZoneType, zoneRepo *repo.Zone, caches *cache.Caches) *ZoneType {
	return &ZoneType{
		ZoneTypeRepo: zoneTypeRepo,
		ZoneRepo:     zoneRepo,
		Caches:       caches,
	}
}

// Cache: zone_types_{cityId}, 10 mins
func (s *ZoneType) GetZoneTypes(ctx context.Context, cityID string) ([]*model.ZoneType, error) {
	var zoneTypes []*model.ZoneType
	_, err := s.Caches.ZoneTypesByCityID.MutexGetSet(cityID, &zoneTypes, func() ([]*model.ZoneType, error) {
		zoneTypes, err := s.ZoneTypeRepo.GetZoneTypesByCityID(ctx, cityID)
		if err != nil {
			return nil, err
		}
		if zoneTypes == nil {
			zoneTypes = make([]*model.ZoneType, 0)
		}
		return zoneTypes, nil
	}, constant.CacheTTLZoneTypes)
	if err != nil {
		return nil, err
	}
	return zoneTypes, nil
}

func (s *ZoneType) CreateZoneType(ctx context.Context, req *types.CreateZoneTypeRequest) (*model.ZoneType, error) {
	if err := s.checkNameUnique(ctx, req.Name, 0); err != nil {
		return nil, err
	}

	now := time.Now()
	zoneType := &model.ZoneType{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		CityID:      req.CityID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.ZoneTypeRepo.CreateZoneType(ctx, zoneType); err != nil {
		return nil, err
	}

	evictAfterWrite("zone_type", zoneType.CityID, s.Caches.ZoneTypesByCityID, s.Caches.ExportByCityID)
	return zoneType, nil
}

func (s *ZoneType) UpdateZoneType(ctx context.Context, id int, req *types.UpdateZoneTypeRequest) (*model.ZoneType, error) {
	zoneType, err := s.ZoneTypeRepo.GetZoneTypeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkNameUnique(ctx, req.Name, id); err != nil {
		return nil, err
	}

	zoneType.Name = req.Name
	zoneType.Description = req.Description
	zoneType.Color = req.Color
	zoneType.UpdatedAt = time.Now()
	if err := s.ZoneTypeRepo.UpdateZoneType(ctx, zoneType); err != nil {
		return nil, err
	}

	evictAfterWrite("zone_type", zoneType.CityID, s.Caches.ZoneTypesByCityID, s.Caches.ExportByCityID)
	return zoneType, nil
}

// DeleteZoneType refuses to drop a type that still has zones attached. The
// reference count comes straight from persistence, never from cache, since
// the guard is safety-critical.
func (s *ZoneType) DeleteZoneType(ctx context.Context, id int) error {
	zoneType, err := s.ZoneTypeRepo.GetZoneTypeByID(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.ZoneRepo.CountZonesByTypeID(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return zmerr.ErrConflict.Msg("Cannot delete zone type that is being used by zones")
	}

	if err := s.ZoneTypeRepo.DeleteZoneType(ctx, id); err != nil {
		return err
	}

	evictAfterWrite("zone_type", zoneType.CityID, s.Caches.ZoneTypesByCityID, s.Caches.ExportByCityID)
	return nil
}

// Zone type names are unique across all cities. This mirrors the schema's
// global unique index; every other scoping rule in the system is per-city.
func (s *ZoneType) checkNameUnique(ctx context.Context, name string, excludeID int) error {
	taken, err := s.ZoneTypeRepo.ExistsZoneTypeName(ctx, name, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return zmerr.NewInvalidViolations([]*zmerr.Violation{{
			Field:     "name",
			Violation: "unique",
			Message:   "name has already been taken",
		}})
	}
	return nil
}
