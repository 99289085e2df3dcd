package model

// ExportSnapshot is the derived read model combining all three entity lists
// for one city. It is never persisted: the export service rebuilds it from
// the source tables and caches the assembled value as a whole.
type ExportSnapshot struct {
	CityID         string      `json:"cityId"`
	ExportedAt     string      `json:"exportedAt" example:"2025-10-14T19:18:30+08:00"`
	TotalZones     int         `json:"totalZones"`
	TotalZoneTypes int         `json:"totalZoneTypes"`
	TotalRegions   int         `json:"totalRegions"`
	Zones          []*Zone     `json:"zones"`
	ZoneTypes      []*ZoneType `json:"zoneTypes"`
	Regions        []*Region   `json:"regions"`
}
