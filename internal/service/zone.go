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

// ZoneRepo is the persistence surface the zone service relies on. Declared
// service-side so tests run against in-memory fakes.
type ZoneRepo interface {
	GetZonesByCityID(ctx context.Context, cityID string) ([]*model.Zone, error)
	GetZoneByID(ctx context.Context, id int) (*model.Zone, error)
	CreateZone(ctx context.Context, zone *model.Zone) error
	UpdateZone(ctx context.Context, zone *model.Zone, columns []string) error
	DeleteZone(ctx context.Context, id int) error
	DeleteZonesByCityID(ctx context.Context, cityID string) error
	CountZonesByTypeID(ctx context.Context, typeID int) (int, error)
}

type Zone struct {
	ZoneRepo     ZoneRepo
	ZoneTypeRepo ZoneTypeRepo
	Caches       *cache.Caches
}

func NewZone(zoneRepo *repo.Zone, zoneTypeRepo *repo.ZoneType, caches *cache.Caches) *Zone {
	return &Zone{
		ZoneRepo:     zoneRepo,
		ZoneTypeRepo: zoneTypeRepo,
		Caches:       caches,
	}
}

// Cache: zones_{cityId}, 5 mins
func (s *Zone) GetZones(ctx context.Context, cityID string) ([]*model.Zone, error) {
	var zones []*model.Zone
	_, err := s.Caches.ZonesByCityID.MutexGetSet(cityID, &zones, func() ([]*model.Zone, error) {
		zones, err := s.ZoneRepo.GetZonesByCityID(ctx, cityID)
		if err != nil {
			return nil, err
		}
		if zones == nil {
			zones = make([]*model.Zone, 0)
		}
		return zones, nil
	}, constant.CacheTTLZones)
	if err != nil {
		return nil, err
	}
	return zones, nil
}

func (s *Zone) CreateZone(ctx context.Context, req *types.CreateZoneRequest) (*model.Zone, error) {
	if err := s.checkTypeExists(ctx, req.TypeID); err != nil {
		return nil, err
	}

	now := time.Now()
	zone := &model.Zone{
		Name:        req.Name,
		TypeID:      req.TypeID,
		Color:       req.Color,
		Coordinates: req.Coordinates,
		Area:        req.Area,
		CityID:      req.CityID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.ZoneRepo.CreateZone(ctx, zone); err != nil {
		return nil, err
	}

	evictAfterWrite("zone", zone.CityID, s.Caches.ZonesByCityID, s.Caches.ExportByCityID)
	return zone, nil
}

// UpdateZone applies the patch to the stored record. Cache eviction keys off
// the record's own city_id rather than anything the client sent.
func (s *Zone) UpdateZone(ctx context.Context, id int, req *types.UpdateZoneRequest) (*model.Zone, error) {
	zone, err := s.ZoneRepo.GetZoneByID(ctx, id)
	if err != nil {
		return nil, err
	}

	columns := make([]string, 0, 5)
	if req.Name.Valid {
		zone.Name = req.Name.String
		columns = append(columns, "name")
	}
	if req.TypeID.Valid {
		if err := s.checkTypeExists(ctx, int(req.TypeID.Int64)); err != nil {
			return nil, err
		}
		zone.TypeID = int(req.TypeID.Int64)
		columns = append(columns, "type_id")
	}
	if req.Color.Valid {
		zone.Color = req.Color.String
		columns = append(columns, "color")
	}
	if len(req.Coordinates) > 0 {
		zone.Coordinates = req.Coordinates
		columns = append(columns, "coordinates")
	}
	if req.Area.Valid {
		zone.Area = req.Area
		columns = append(columns, "area")
	}

	if len(columns) == 0 {
		return zone, nil
	}

	zone.UpdatedAt = time.Now()
	if err := s.ZoneRepo.UpdateZone(ctx, zone, columns); err != nil {
		return nil, err
	}

	evictAfterWrite("zone", zone.CityID, s.Caches.ZonesByCityID, s.Caches.ExportByCityID)
	return zone, nil
}

func (s *Zone) DeleteZone(ctx context.Context, id int) error {
	zone, err := s.ZoneRepo.GetZoneByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.ZoneRepo.DeleteZone(ctx, id); err != nil {
		return err
	}

	evictAfterWrite("zone", zone.CityID, s.Caches.ZonesByCityID, s.Caches.ExportByCityID)
	return nil
}

// ClearZones drops every zone of a city in one batch. It deletes zones, not
// types: the zone type in-use guard does not apply here.
func (s *Zone) ClearZones(ctx context.Context, cityID string) error {
	if err := s.ZoneRepo.DeleteZonesByCityID(ctx, cityID); err != nil {
		return err
	}

	evictAfterWrite("zone", cityID, s.Caches.ZonesByCityID, s.Caches.ExportByCityID)
	return nil
}

func (s *Zone) checkTypeExists(ctx context.Context, typeID int) error {
	_, err := s.ZoneTypeRepo.GetZoneTypeByID(ctx, typeID)
	if err == nil {
		return nil
	}
	if err == zmerr.ErrNotFound {
		return zmerr.NewInvalidViolations([]*zmerr.Violation{{
			Field:     "typeId",
			Violation: "exists",
			Message:   "typeId must reference an existing zone type",
		}})
	}
	return err
}
