package constant

import "time"

// DefaultCityID is the city every request falls back to when no cityId is
// given. The portal currently serves a single LGU dataset.
const DefaultCityID = "caloocan"

// Cache TTLs. Zones change far more often than types or regions, hence the
// shorter window.
const (
	CacheTTLZones     = time.Minute * 5
	CacheTTLZoneTypes = time.Minute * 10
	CacheTTLRegions   = time.Minute * 10
	CacheTTLExport    = time.Minute * 10
)

// Cache key prefixes. Final keys take the form `{prefix}_{cityId}`,
// e.g. `zones_caloocan`.
const (
	CacheKeyZones     = "zones"
	CacheKeyZoneTypes = "zone_types"
	CacheKeyRegions   = "regions"
	CacheKeyExport    = "export"
)

const ContextKeyRequestID = "requestid"
