// Package testutil holds in-memory persistence fakes shared by the service
// and controller tests.
package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/lungsod/zoning-backend/internal/model"
	"github.com/lungsod/zoning-backend/internal/pkg/zmerr"
)

// ZoneRepo is an in-memory stand-in for repo.Zone. Setting Err makes every
// method fail with it, which is how tests simulate an unreachable database.
type ZoneRepo struct {
	mu     sync.Mutex
	zones  map[int]*model.Zone
	nextID int

	Err       error
	ListCalls int
}

func NewZoneRepo() *ZoneRepo {
	return &ZoneRepo{zones: map[int]*model.Zone{}}
}

// Seed stores a zone directly, bypassing Err, and assigns it an id.
func (r *ZoneRepo) Seed(zone *model.Zone) *model.Zone {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	zone.ZoneID = r.nextID
	stored := *zone
	r.zones[zone.ZoneID] = &stored
	return zone
}

func (r *ZoneRepo) GetZonesByCityID(ctx context.Context, cityID string) ([]*model.Zone, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ListCalls++
	if r.Err != nil {
		return nil, r.Err
	}
	var zones []*model.Zone
	for _, z := range r.zones {
		if z.CityID == cityID {
			copied := *z
			zones = append(zones, &copied)
		}
	}
	sort.Slice(zones, func(i, j int) bool { return zones[i].ZoneID < zones[j].ZoneID })
	return zones, nil
}

func (r *ZoneRepo) GetZoneByID(ctx context.Context, id int) (*model.Zone, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	z, ok := r.zones[id]
	if !ok {
		return nil, zmerr.ErrNotFound
	}
	copied := *z
	return &copied, nil
}

func (r *ZoneRepo) CreateZone(ctx context.Context, zone *model.Zone) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.nextID++
	zone.ZoneID = r.nextID
	stored := *zone
	r.zones[zone.ZoneID] = &stored
	return nil
}

func (r *ZoneRepo) UpdateZone(ctx context.Context, zone *model.Zone, columns []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.zones[zone.ZoneID]; !ok {
		return zmerr.ErrNotFound
	}
	stored := *zone
	r.zones[zone.ZoneID] = &stored
	return nil
}

func (r *ZoneRepo) DeleteZone(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	delete(r.zones, id)
	return nil
}

func (r *ZoneRepo) DeleteZonesByCityID(ctx context.Context, cityID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for id, z := range r.zones {
		if z.CityID == cityID {
			delete(r.zones, id)
		}
	}
	return nil
}

func (r *ZoneRepo) CountZonesByTypeID(ctx context.Context, typeID int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return 0, r.Err
	}
	count := 0
	for _, z := range r.zones {
		if z.TypeID == typeID {
			count++
		}
	}
	return count, nil
}

// ZoneTypeRepo is an in-memory stand-in for repo.ZoneType.
type ZoneTypeRepo struct {
	mu        sync.Mutex
	zoneTypes map[int]*model.ZoneType
	nextID    int

	Err       error
	ListCalls int
}

func NewZoneTypeRepo() *ZoneTypeRepo {
	return &ZoneTypeRepo{zoneTypes: map[int]*model.ZoneType{}}
}

func (r *ZoneTypeRepo) Seed(zoneType *model.ZoneType) *model.ZoneType {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	zoneType.ZoneTypeID = r.nextID
	stored := *zoneType
	r.zoneTypes[zoneType.ZoneTypeID] = &stored
	return zoneType
}

func (r *ZoneTypeRepo) Has(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.zoneTypes[id]
	return ok
}

func (r *ZoneTypeRepo) GetZoneTypesByCityID(ctx context.Context, cityID string) ([]*model.ZoneType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ListCalls++
	if r.Err != nil {
		return nil, r.Err
	}
	var zoneTypes []*model.ZoneType
	for _, t := range r.zoneTypes {
		if t.CityID == cityID {
			copied := *t
			zoneTypes = append(zoneTypes, &copied)
		}
	}
	sort.Slice(zoneTypes, func(i, j int) bool { return zoneTypes[i].ZoneTypeID < zoneTypes[j].ZoneTypeID })
	return zoneTypes, nil
}

func (r *ZoneTypeRepo) GetZoneTypeByID(ctx context.Context, id int) (*model.ZoneType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	t, ok := r.zoneTypes[id]
	if !ok {
		return nil, zmerr.ErrNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *ZoneTypeRepo) ExistsZoneTypeName(ctx context.Context, name string, excludeID int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return false, r.Err
	}
	for _, t := range r.zoneTypes {
		if t.Name == name && t.ZoneTypeID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *ZoneTypeRepo) CreateZoneType(ctx context.Context, zoneType *model.ZoneType) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.nextID++
	zoneType.ZoneTypeID = r.nextID
	stored := *zoneType
	r.zoneTypes[zoneType.ZoneTypeID] = &stored
	return nil
}

func (r *ZoneTypeRepo) UpdateZoneType(ctx context.Context, zoneType *model.ZoneType) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.zoneTypes[zoneType.ZoneTypeID]; !ok {
		return zmerr.ErrNotFound
	}
	stored := *zoneType
	r.zoneTypes[zoneType.ZoneTypeID] = &stored
	return nil
}

func (r *ZoneTypeRepo) DeleteZoneType(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	delete(r.zoneTypes, id)
	return nil
}

// RegionRepo is an in-memory stand-in for repo.Region.
type RegionRepo struct {
	mu      sync.Mutex
	regions map[int]*model.Region
	nextID  int

	Err       error
	ListCalls int
}

func NewRegionRepo() *RegionRepo {
	return &RegionRepo{regions: map[int]*model.Region{}}
}

func (r *RegionRepo) Seed(region *model.Region) *model.Region {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	region.RegionID = r.nextID
	stored := *region
	r.regions[region.RegionID] = &stored
	return region
}

func (r *RegionRepo) GetRegionsByCityID(ctx context.Context, cityID string) ([]*model.Region, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ListCalls++
	if r.Err != nil {
		return nil, r.Err
	}
	var regions []*model.Region
	for _, reg := range r.regions {
		if reg.CityID == cityID {
			copied := *reg
			regions = append(regions, &copied)
		}
	}
	sort.Slice(regions, func(i, j int) bool { return regions[i].RegionID < regions[j].RegionID })
	return regions, nil
}

func (r *RegionRepo) GetRegionByID(ctx context.Context, id int) (*model.Region, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	reg, ok := r.regions[id]
	if !ok {
		return nil, zmerr.ErrNotFound
	}
	copied := *reg
	return &copied, nil
}

func (r *RegionRepo) CreateRegion(ctx context.Context, region *model.Region) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.nextID++
	region.RegionID = r.nextID
	stored := *region
	r.regions[region.RegionID] = &stored
	return nil
}

func (r *RegionRepo) UpdateRegion(ctx context.Context, region *model.Region) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.regions[region.RegionID]; !ok {
		return zmerr.ErrNotFound
	}
	stored := *region
	r.regions[region.RegionID] = &stored
	return nil
}

func (r *RegionRepo) DeleteRegion(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	delete(r.regions, id)
	return nil
}
