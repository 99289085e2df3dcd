package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/lungsod/zoning-backend/internal/constant"
	"github.com/lungsod/zoning-backend/internal/model/types"
	"github.com/lungsod/zoning-backend/internal/pkg/zmerr"
	"github.com/lungsod/zoning-backend/internal/server/svr"
	"github.com/lungsod/zoning-backend/internal/service"
	"github.com/lungsod/zoning-backend/internal/util/rekuest"
)

type ZoneType struct {
	fx.In

	ZoneTypeService *service.ZoneType
}

func RegisterZoneType(api *svr.API, c ZoneType) {
	api.Get("/zone-types", c.GetZoneTypes)
	api.Post("/zone-types", c.CreateZoneType)
	api.Put("/zone-types/:id", c.UpdateZoneType)
	api.Delete("/zone-types/:id", c.DeleteZoneType)
}

func (c *ZoneType) GetZoneTypes(ctx *fiber.Ctx) error {
	cityID := ctx.Query("cityId", constant.DefaultCityID)

	zoneTypes, err := c.ZoneTypeService.GetZoneTypes(ctx.UserContext(), cityID)
	if err != nil {
		return err
	}

	return ctx.JSON(zoneTypes)
}

func (c *ZoneType) CreateZoneType(ctx *fiber.Ctx) error {
	var req types.CreateZoneTypeRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	zoneType, err := c.ZoneTypeService.CreateZoneType(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(zoneType)
}

func (c *ZoneType) UpdateZoneType(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return zmerr.ErrInvalidReq.Msg("invalid request: id must be an integer")
	}

	var req types.UpdateZoneTypeRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	zoneType, err := c.ZoneTypeService.UpdateZoneType(ctx.UserContext(), id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(zoneType)
}

func (c *ZoneType) DeleteZoneType(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return zmerr.ErrInvalidReq.Msg("invalid request: id must be an integer")
	}

	if err := c.ZoneTypeService.DeleteZoneType(ctx.UserContext(), id); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"message": "Zone type deleted successfully",
	})
}
