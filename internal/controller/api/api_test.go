package api

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/lungsod/zoning-backend/internal/app/appconfig"
	"github.com/lungsod/zoning-backend/internal/model"
	modelcache "github.com/lungsod/zoning-backend/internal/model/cache"
	"github.com/lungsod/zoning-backend/internal/pkg/cache"
	"github.com/lungsod/zoning-backend/internal/pkg/testutil"
	"github.com/lungsod/zoning-backend/internal/server/httpserver"
	"github.com/lungsod/zoning-backend/internal/server/svr"
	"github.com/lungsod/zoning-backend/internal/service"
)

type testEnv struct {
	app          *fiber.App
	zoneRepo     *testutil.ZoneRepo
	zoneTypeRepo *testutil.ZoneTypeRepo
	regionRepo   *testutil.RegionRepo
	caches       *modelcache.Caches
}

func newTestEnv() *testEnv {
	conf := &appconfig.Config{ConfigSpec: appconfig.ConfigSpec{
		TrustedProxies:            []string{"127.0.0.1"},
		HTTPServerShutdownTimeout: time.Second,
	}}
	app := httpserver.Create(conf)
	apiGroup, _ := svr.CreateEndpointGroups(app)

	zoneRepo := testutil.NewZoneRepo()
	zoneTypeRepo := testutil.NewZoneTypeRepo()
	regionRepo := testutil.NewRegionRepo()
	caches := modelcache.New(cache.NewMemory())

	zoneSvc := &service.Zone{ZoneRepo: zoneRepo, ZoneTypeRepo: zoneTypeRepo, Caches: caches}
	zoneTypeSvc := &service.ZoneType{ZoneTypeRepo: zoneTypeRepo, ZoneRepo: zoneRepo, Caches: caches}
	regionSvc := &service.Region{RegionRepo: regionRepo, Caches: caches}
	exportSvc := &service.Export{ZoneRepo: zoneRepo, ZoneTypeRepo: zoneTypeRepo, RegionRepo: regionRepo, Caches: caches}

	RegisterZone(apiGroup, Zone{ZoneService: zoneSvc})
	RegisterZoneType(apiGroup, ZoneType{ZoneTypeService: zoneTypeSvc})
	RegisterRegion(apiGroup, Region{RegionService: regionSvc})
	RegisterExport(apiGroup, Export{ExportService: exportSvc})

	return &testEnv{
		app:          app,
		zoneRepo:     zoneRepo,
		zoneTypeRepo: zoneTypeRepo,
		regionRepo:   regionRepo,
		caches:       caches,
	}
}

func (e *testEnv) request(t *testing.T, method, path string, body any) (int, gjson.Result) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		marshaled, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(marshaled)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, gjson.ParseBytes(raw)
}

func (e *testEnv) rawRequest(t *testing.T, method, path, body string) (int, gjson.Result) {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, gjson.ParseBytes(raw)
}

func seedType(name string) *model.ZoneType {
	return &model.ZoneType{Name: name, Color: "#4CAF50", CityID: "caloocan"}
}

func validZoneBody(name string, typeID int) fiber.Map {
	return fiber.Map{
		"name":        name,
		"typeId":      typeID,
		"color":       "#4CAF50",
		"coordinates": json.RawMessage(`{"type":"Polygon","coordinates":[]}`),
		"cityId":      "caloocan",
	}
}

func TestZoneLifecycle(t *testing.T) {
	env := newTestEnv()
	env.zoneTypeRepo.Seed(seedType("Residential"))

	status, created := env.request(t, http.MethodPost, "/api/zones", validZoneBody("Residential A", 1))
	require.Equal(t, http.StatusCreated, status)
	id := created.Get("id").Int()
	assert.NotZero(t, id)
	assert.Equal(t, "Residential A", created.Get("name").String())

	status, listed := env.request(t, http.MethodGet, "/api/zones", nil)
	require.Equal(t, http.StatusOK, status, "default city is caloocan")
	require.Len(t, listed.Array(), 1)
	assert.Equal(t, id, listed.Array()[0].Get("id").Int())

	status, updated := env.request(t, http.MethodPut, "/api/zones/1", fiber.Map{"name": "Renamed"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Renamed", updated.Get("name").String())
	assert.Equal(t, "#4CAF50", updated.Get("color").String(), "fields absent from the patch stay intact")

	status, deleted := env.request(t, http.MethodDelete, "/api/zones/1", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Zone deleted successfully", deleted.Get("message").String())

	status, listed = env.request(t, http.MethodGet, "/api/zones?cityId=caloocan", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, listed.Array(), 0)
}

func TestZoneValidation(t *testing.T) {
	env := newTestEnv()
	env.zoneTypeRepo.Seed(seedType("Residential"))

	t.Run("missing name", func(t *testing.T) {
		body := validZoneBody("", 1)
		delete(body, "name")
		status, resp := env.request(t, http.MethodPost, "/api/zones", body)
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Equal(t, "INVALID_REQUEST", resp.Get("code").String())
		assert.True(t, resp.Get("violations").Exists())
	})

	t.Run("color length", func(t *testing.T) {
		body := validZoneBody("Residential A", 1)
		body["color"] = "#FFF"
		status, resp := env.request(t, http.MethodPost, "/api/zones", body)
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Equal(t, "INVALID_REQUEST", resp.Get("code").String())
	})

	t.Run("malformed body", func(t *testing.T) {
		status, resp := env.rawRequest(t, http.MethodPost, "/api/zones",
			`{"name":"Residential A","typeId":1,"color":"#4CAF50","coordinates":{"type":`)
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Equal(t, "INVALID_REQUEST", resp.Get("code").String())
	})

	t.Run("unknown type reference", func(t *testing.T) {
		status, resp := env.request(t, http.MethodPost, "/api/zones", validZoneBody("Orphan", 42))
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Equal(t, "INVALID_REQUEST", resp.Get("code").String())
		assert.Equal(t, "typeId", resp.Get("violations.0.field").String())
	})

	t.Run("non-integer id", func(t *testing.T) {
		status, resp := env.request(t, http.MethodPut, "/api/zones/abc", fiber.Map{"name": "x"})
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Equal(t, "INVALID_REQUEST", resp.Get("code").String())
	})
}

func TestZoneNotFound(t *testing.T) {
	env := newTestEnv()

	status, resp := env.request(t, http.MethodPut, "/api/zones/999", fiber.Map{"name": "ghost"})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", resp.Get("code").String())

	status, resp = env.request(t, http.MethodDelete, "/api/zones/999", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", resp.Get("code").String())
}

func TestClearZones(t *testing.T) {
	env := newTestEnv()
	env.zoneTypeRepo.Seed(seedType("Residential"))

	status, _ := env.request(t, http.MethodPost, "/api/zones", validZoneBody("Residential A", 1))
	require.Equal(t, http.StatusCreated, status)
	status, _ = env.request(t, http.MethodPost, "/api/zones", validZoneBody("Commercial B", 1))
	require.Equal(t, http.StatusCreated, status)

	status, resp := env.request(t, http.MethodDelete, "/api/zones/clear/caloocan", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "All zones cleared successfully", resp.Get("message").String())

	status, listed := env.request(t, http.MethodGet, "/api/zones", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, listed.Array(), 0)
}

func TestZoneTypeDeleteBlockedWhileInUse(t *testing.T) {
	env := newTestEnv()
	env.zoneTypeRepo.Seed(seedType("Residential"))

	status, _ := env.request(t, http.MethodPost, "/api/zones", validZoneBody("Residential A", 1))
	require.Equal(t, http.StatusCreated, status)

	status, resp := env.request(t, http.MethodDelete, "/api/zone-types/1", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "CONFLICT", resp.Get("code").String())
	assert.Equal(t, "Cannot delete zone type that is being used by zones", resp.Get("message").String())

	// removing the referencing zone unblocks the delete
	status, _ = env.request(t, http.MethodDelete, "/api/zones/1", nil)
	require.Equal(t, http.StatusOK, status)

	status, resp = env.request(t, http.MethodDelete, "/api/zone-types/1", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Zone type deleted successfully", resp.Get("message").String())
}

func TestZoneTypeDuplicateName(t *testing.T) {
	env := newTestEnv()
	env.zoneTypeRepo.Seed(seedType("Residential"))

	status, resp := env.request(t, http.MethodPost, "/api/zone-types", fiber.Map{
		"name":   "Residential",
		"color":  "#2196F3",
		"cityId": "quezon",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "INVALID_REQUEST", resp.Get("code").String())
	assert.Equal(t, "name", resp.Get("violations.0.field").String())
}

func TestRegionValidationBoundaries(t *testing.T) {
	env := newTestEnv()

	regionBody := func(lat, lon float64, zoom int) fiber.Map {
		return fiber.Map{
			"name":      "Boundary Probe",
			"latitude":  lat,
			"longitude": lon,
			"zoomLevel": zoom,
			"cityId":    "caloocan",
		}
	}

	cases := []struct {
		name   string
		body   fiber.Map
		status int
	}{
		{"lat upper bound", regionBody(90, 0.1, 14), http.StatusCreated},
		{"lat lower bound", regionBody(-90, 0.1, 14), http.StatusCreated},
		{"lat above range", regionBody(90.0001, 0.1, 14), http.StatusUnprocessableEntity},
		{"lat below range", regionBody(-90.0001, 0.1, 14), http.StatusUnprocessableEntity},
		{"lon above range", regionBody(0.1, 180.0001, 14), http.StatusUnprocessableEntity},
		{"zoom lower bound", regionBody(0.1, 0.1, 1), http.StatusCreated},
		{"zoom upper bound", regionBody(0.1, 0.1, 20), http.StatusCreated},
		{"zoom above range", regionBody(0.1, 0.1, 21), http.StatusUnprocessableEntity},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, resp := env.request(t, http.MethodPost, "/api/regions", tc.body)
			assert.Equal(t, tc.status, status)
			if tc.status != http.StatusCreated {
				assert.Equal(t, "INVALID_REQUEST", resp.Get("code").String())
			}
		})
	}
}

func TestRegionLifecycle(t *testing.T) {
	env := newTestEnv()

	status, created := env.request(t, http.MethodPost, "/api/regions", fiber.Map{
		"name":      "City Center",
		"latitude":  14.7597,
		"longitude": 121.0408,
		"zoomLevel": 14,
		"cityId":    "caloocan",
	})
	require.Equal(t, http.StatusCreated, status)
	id := created.Get("id").Int()
	require.NotZero(t, id)

	status, updated := env.request(t, http.MethodPut, "/api/regions/1", fiber.Map{
		"name":      "Old Town",
		"latitude":  14.65,
		"longitude": 120.98,
		"zoomLevel": 16,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Old Town", updated.Get("name").String())

	status, deleted := env.request(t, http.MethodDelete, "/api/regions/1", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Region deleted successfully", deleted.Get("message").String())

	status, listed := env.request(t, http.MethodGet, "/api/regions?cityId=caloocan", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, listed.Array(), 0)
}

func TestExportReflectsWrites(t *testing.T) {
	env := newTestEnv()
	env.zoneTypeRepo.Seed(seedType("Residential"))

	status, snapshot := env.request(t, http.MethodGet, "/api/export/caloocan", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "caloocan", snapshot.Get("cityId").String())
	assert.Zero(t, snapshot.Get("totalZones").Int())
	assert.True(t, snapshot.Get("zones").IsArray())

	status, _ = env.request(t, http.MethodPost, "/api/zones", validZoneBody("Residential A", 1))
	require.Equal(t, http.StatusCreated, status)

	status, snapshot = env.request(t, http.MethodGet, "/api/export/caloocan", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(1), snapshot.Get("totalZones").Int(), "the zone write must invalidate the cached snapshot")
	assert.Equal(t, "Residential A", snapshot.Get("zones.0.name").String())
}
