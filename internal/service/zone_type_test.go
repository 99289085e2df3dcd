package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"github.com/lungsod/zoning-backend/internal/model"
	modelcache "github.com/lungsod/zoning-backend/internal/model/cache"
	"github.com/lungsod/zoning-backend/internal/model/types"
	"github.com/lungsod/zoning-backend/internal/pkg/cache"
	"github.com/lungsod/zoning-backend/internal/pkg/testutil"
	"github.com/lungsod/zoning-backend/internal/pkg/zmerr"
)

func newZoneTypeTestEnv() (*ZoneType, *testutil.ZoneTypeRepo, *testutil.ZoneRepo, *modelcache.Caches) {
	zoneTypeRepo := testutil.NewZoneTypeRepo()
	zoneRepo := testutil.NewZoneRepo()
	caches := modelcache.New(cache.NewMemory())
	svc := &ZoneType{
		ZoneTypeRepo: zoneTypeRepo,
		ZoneRepo:     zoneRepo,
		Caches:       caches,
	}
	return svc, zoneTypeRepo, zoneRepo, caches
}

func TestGetZoneTypesServesSecondReadFromCache(t *testing.T) {
	svc, zoneTypeRepo, _, _ := newZoneTypeTestEnv()
	zoneTypeRepo.Seed(&model.ZoneType{Name: "Residential", Color: "#4CAF50", CityID: "caloocan"})

	first, err := svc.GetZoneTypes(context.Background(), "caloocan")
	require.NoError(t, err)
	require.Len(t, first, 1)

	_, err = svc.GetZoneTypes(context.Background(), "caloocan")
	require.NoError(t, err)
	assert.Equal(t, 1, zoneTypeRepo.ListCalls)
}

func TestCreateZoneTypeDuplicateNameRejected(t *testing.T) {
	svc, zoneTypeRepo, _, _ := newZoneTypeTestEnv()
	zoneTypeRepo.Seed(&model.ZoneType{Name: "Residential", Color: "#4CAF50", CityID: "caloocan"})

	_, err := svc.CreateZoneType(context.Background(), &types.CreateZoneTypeRequest{
		Name:   "Residential",
		Color:  "#2196F3",
		CityID: "quezon",
	})
	require.Error(t, err)
	ze, ok := err.(*zmerr.ZoningError)
	require.True(t, ok)
	assert.Equal(t, zmerr.CodeInvalidRequest, ze.ErrorCode, "type name uniqueness spans all cities")
}

func TestUpdateZoneTypeMayKeepItsOwnName(t *testing.T) {
	svc, zoneTypeRepo, _, _ := newZoneTypeTestEnv()
	seeded := zoneTypeRepo.Seed(&model.ZoneType{Name: "Residential", Color: "#4CAF50", CityID: "caloocan"})

	updated, err := svc.UpdateZoneType(context.Background(), seeded.ZoneTypeID, &types.UpdateZoneTypeRequest{
		Name:        "Residential",
		Description: null.StringFrom("single-family housing"),
		Color:       "#2196F3",
	})
	require.NoError(t, err)
	assert.Equal(t, "#2196F3", updated.Color)
	assert.Equal(t, "single-family housing", updated.Description.String)
}

func TestUpdateZoneTypeTakenNameRejected(t *testing.T) {
	svc, zoneTypeRepo, _, _ := newZoneTypeTestEnv()
	zoneTypeRepo.Seed(&model.ZoneType{Name: "Residential", Color: "#4CAF50", CityID: "caloocan"})
	second := zoneTypeRepo.Seed(&model.ZoneType{Name: "Commercial", Color: "#2196F3", CityID: "caloocan"})

	_, err := svc.UpdateZoneType(context.Background(), second.ZoneTypeID, &types.UpdateZoneTypeRequest{
		Name:  "Residential",
		Color: "#2196F3",
	})
	require.Error(t, err)
	ze, ok := err.(*zmerr.ZoningError)
	require.True(t, ok)
	assert.Equal(t, zmerr.CodeInvalidRequest, ze.ErrorCode)
}

func TestDeleteZoneTypeInUseRefused(t *testing.T) {
	svc, zoneTypeRepo, zoneRepo, caches := newZoneTypeTestEnv()
	seeded := zoneTypeRepo.Seed(&model.ZoneType{Name: "Residential", Color: "#4CAF50", CityID: "caloocan"})
	zoneRepo.Seed(&model.Zone{Name: "Residential A", TypeID: seeded.ZoneTypeID, CityID: "caloocan"})

	// prime the list cache so we can assert the refused delete left it intact
	_, err := svc.GetZoneTypes(context.Background(), "caloocan")
	require.NoError(t, err)

	err = svc.DeleteZoneType(context.Background(), seeded.ZoneTypeID)
	require.Error(t, err)
	ze, ok := err.(*zmerr.ZoningError)
	require.True(t, ok)
	assert.Equal(t, zmerr.CodeConflict, ze.ErrorCode)
	assert.Equal(t, "Cannot delete zone type that is being used by zones", ze.Message)

	assert.True(t, zoneTypeRepo.Has(seeded.ZoneTypeID), "the refused delete must not mutate persistence")

	var cached []*model.ZoneType
	err = caches.ZoneTypesByCityID.Get("caloocan", &cached)
	require.NoError(t, err, "the refused delete must not evict the cache")
	assert.Len(t, cached, 1)
}

func TestDeleteZoneTypeUnused(t *testing.T) {
	svc, zoneTypeRepo, _, _ := newZoneTypeTestEnv()
	seeded := zoneTypeRepo.Seed(&model.ZoneType{Name: "Residential", Color: "#4CAF50", CityID: "caloocan"})

	require.NoError(t, svc.DeleteZoneType(context.Background(), seeded.ZoneTypeID))
	assert.False(t, zoneTypeRepo.Has(seeded.ZoneTypeID))

	zoneTypes, err := svc.GetZoneTypes(context.Background(), "caloocan")
	require.NoError(t, err)
	assert.Len(t, zoneTypes, 0)
}

func TestDeleteZoneTypeNotFound(t *testing.T) {
	svc, _, _, _ := newZoneTypeTestEnv()

	err := svc.DeleteZoneType(context.Background(), 999)
	assert.ErrorIs(t, err, zmerr.ErrNotFound)
}
