package types

import (
	"github.com/goccy/go-json"
	"gopkg.in/guregu/null.v3"
)

type CreateZoneRequest struct {
	Name        string          `json:"name" validate:"required"`
	TypeID      int             `json:"typeId" validate:"required"`
	Color       string          `json:"color" validate:"required,len=7"`
	Coordinates json.RawMessage `json:"coordinates" validate:"required" swaggertype:"object"`
	Area        null.String     `json:"area" swaggertype:"string"`
	CityID      string          `json:"cityId" validate:"required"`
}

// UpdateZoneRequest is an explicit patch: only fields carrying a value are
// applied. Absent fields leave the stored record untouched.
type UpdateZoneRequest struct {
	Name        null.String     `json:"name" swaggertype:"string"`
	TypeID      null.Int        `json:"typeId" swaggertype:"integer"`
	Color       null.String     `json:"color" swaggertype:"string"`
	Coordinates json.RawMessage `json:"coordinates" swaggertype:"object"`
	Area        null.String     `json:"area" swaggertype:"string"`
}

type CreateZoneTypeRequest struct {
	Name        string      `json:"name" validate:"required"`
	Description null.String `json:"description" swaggertype:"string"`
	Color       string      `json:"color" validate:"required,len=7"`
	CityID      string      `json:"cityId" validate:"required"`
}

// UpdateZoneTypeRequest replaces every mutable field of a zone type.
type UpdateZoneTypeRequest struct {
	Name        string      `json:"name" validate:"required"`
	Description null.String `json:"description" swaggertype:"string"`
	Color       string      `json:"color" validate:"required,len=7"`
}

// Latitude and longitude are pointers so a legitimate 0 coordinate still
// passes `required` while the range tags apply to the dereferenced value.
type CreateRegionRequest struct {
	Name      string   `json:"name" validate:"required"`
	Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
	ZoomLevel int      `json:"zoomLevel" validate:"required,min=1,max=20"`
	CityID    string   `json:"cityId" validate:"required"`
}

// UpdateRegionRequest replaces every mutable field of a region.
type UpdateRegionRequest struct {
	Name      string   `json:"name" validate:"required"`
	Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
	ZoomLevel int      `json:"zoomLevel" validate:"required,min=1,max=20"`
}
