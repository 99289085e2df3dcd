package service

import (
	"context"
	"time"

	"github.com/lungsod/zoning-backend/internal/constant"
	"github.com/lungsod/zoning-backend/internal/model"
	"github.com/lungsod/zoning-backend/internal/model/cache"
	"github.com/lungsod/zoning-backend/internal/model/types"
	"github.com/lungsod/zoning-backend/internal/repo"
)

type RegionRepo interface {
	GetRegionsByCityID(ctx context.Context, cityID string) ([]*model.Region, error)
	GetRegionByID(ctx context.Context, id int) (*model.Region, error)
	CreateRegion(ctx context.Context, region *model.Region) error
	UpdateRegion(ctx context.Context, region *model.Region) error
	DeleteRegion(ctx context.Context, id int) error
}

type Region struct {
	RegionRepo RegionRepo
	Caches     *cache.Caches
}

func NewRegion(regionRepo *repo.Region, caches *cache.Caches) *Region {
	return &Region{
		RegionRepo: regionRepo,
		Caches:     caches,
	}
}

// Cache: regions_{cityId}, 10 mins
func (s *Region) GetRegions(ctx context.Context, cityID string) ([]*model.Region, error) {
	var regions []*model.Region
	_, err := s.Caches.RegionsByCityID.MutexGetSet(cityID, &regions, func() ([]*model.Region, error) {
		regions, err := s.RegionRepo.GetRegionsByCityID(ctx, cityID)
		if err != nil {
			return nil, err
		}
		if regions == nil {
			regions = make([]*model.Region, 0)
		}
		return regions, nil
	}, constant.CacheTTLRegions)
	if err != nil {
		return nil, err
	}
	return regions, nil
}

func (s *Region) CreateRegion(ctx context.Context, req *types.CreateRegionRequest) (*model.Region, error) {
	now := time.Now()
	region := &model.Region{
		Name:      req.Name,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		ZoomLevel: req.ZoomLevel,
		CityID:    req.CityID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.RegionRepo.CreateRegion(ctx, region); err != nil {
		return nil, err
	}

	evictAfterWrite("region", region.CityID, s.Caches.RegionsByCityID, s.Caches.ExportByCityID)
	return region, nil
}

func (s *Region) UpdateRegion(ctx context.Context, id int, req *types.UpdateRegionRequest) (*model.Region, error) {
	region, err := s.RegionRepo.GetRegionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	region.Name = req.Name
	region.Latitude = *req.Latitude
	region.Longitude = *req.Longitude
	region.ZoomLevel = req.ZoomLevel
	region.UpdatedAt = time.Now()
	if err := s.RegionRepo.UpdateRegion(ctx, region); err != nil {
		return nil, err
	}

	evictAfterWrite("region", region.CityID, s.Caches.RegionsByCityID, s.Caches.ExportByCityID)
	return region, nil
}

func (s *Region) DeleteRegion(ctx context.Context, id int) error {
	region, err := s.RegionRepo.GetRegionByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.RegionRepo.DeleteRegion(ctx, id); err != nil {
		return err
	}

	evictAfterWrite("region", region.CityID, s.Caches.RegionsByCityID, s.Caches.ExportByCityID)
	return nil
}
