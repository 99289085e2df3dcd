package model

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

type Zone struct {
	bun.BaseModel `bun:"zones"`

	ZoneID int    `bun:"id,pk,autoincrement" json:"id"`
	Name   string `json:"name"`
	TypeID int    `json:"typeId"`
	Color  string `json:"color" example:"#4CAF50"`
	// Coordinates is an opaque GeoJSON polygon/multi-polygon document. The
	// backend stores and serves it byte-for-byte and never interprets it.
	Coordinates json.RawMessage `bun:"type:jsonb" json:"coordinates" swaggertype:"object"`
	Area        null.String     `json:"area" swaggertype:"string" example:"12.4 ha"`
	CityID      string          `json:"cityId"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
