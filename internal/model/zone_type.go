package model

import (
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

// ZoneType categorizes zones (residential, commercial, ...). A type cannot
// be deleted while any zone still references it.
type ZoneType struct {
	bun.BaseModel `bun:"zone_types"`

	ZoneTypeID  int         `bun:"id,pk,autoincrement" json:"id"`
	Name        string      `json:"name"`
	Description null.String `json:"description" swaggertype:"string"`
	Color       string      `json:"color" example:"#4CAF50"`
	CityID      string      `json:"cityId"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
