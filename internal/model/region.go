package model

import (
	"time"

	"github.com/uptrace/bun"
)

// Region is a named viewport preset on the zoning map.
type Region struct {
	bun.BaseModel `bun:"regions"`

	RegionID  int       `bun:"id,pk,autoincrement" json:"id"`
	Name      string    `json:"name"`
	Latitude  float64   `json:"latitude" example:"14.7597"`
	Longitude float64   `json:"longitude" example:"121.0408"`
	ZoomLevel int       `json:"zoomLevel" example:"14"`
	CityID    string    `json:"cityId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
