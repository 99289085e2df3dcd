package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/fx"

	"github.com/lungsod/zoning-backend/internal/constant"
	"github.com/lungsod/zoning-backend/internal/model/types"
	"github.com/lungsod/zoning-backend/internal/pkg/zmerr"
	"github.com/lungsod/zoning-backend/internal/server/svr"
	"github.com/lungsod/zoning-backend/internal/service"
	"github.com/lungsod/zoning-backend/internal/util/rekuest"
)

type Zone struct {
	fx.In

	ZoneService *service.Zone
}

func RegisterZone(api *svr.API, c Zone) {
	api.Get("/zones", c.GetZones)
	api.Post("/zones", c.CreateZone)
	api.Put("/zones/:id", c.UpdateZone)
	api.Delete("/zones/clear/:cityId", c.ClearZones)
	api.Delete("/zones/:id", c.DeleteZone)
}

func (c *Zone) GetZones(ctx *fiber.Ctx) error {
	cityID := ctx.Query("cityId", constant.DefaultCityID)

	zones, err := c.ZoneService.GetZones(ctx.UserContext(), cityID)
	if err != nil {
		return err
	}

	return ctx.JSON(zones)
}

func (c *Zone) CreateZone(ctx *fiber.Ctx) error {
	var req types.CreateZoneRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}
	if !gjson.ValidBytes(req.Coordinates) {
		return zmerr.ErrInvalidReq.Msg("invalid request: coordinates is not valid JSON")
	}

	zone, err := c.ZoneService.CreateZone(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(zone)
}

func (c *Zone) UpdateZone(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return zmerr.ErrInvalidReq.Msg("invalid request: id must be an integer")
	}

	var req types.UpdateZoneRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}
	if req.Color.Valid {
		if err := rekuest.ValidVar("color", req.Color.String, "len=7"); err != nil {
			return err
		}
	}
	if len(req.Coordinates) > 0 && !gjson.ValidBytes(req.Coordinates) {
		return zmerr.ErrInvalidReq.Msg("invalid request: coordinates is not valid JSON")
	}

	zone, err := c.ZoneService.UpdateZone(ctx.UserContext(), id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(zone)
}

func (c *Zone) DeleteZone(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return zmerr.ErrInvalidReq.Msg("invalid request: id must be an integer")
	}

	if err := c.ZoneService.DeleteZone(ctx.UserContext(), id); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"message": "Zone deleted successfully",
	})
}

func (c *Zone) ClearZones(ctx *fiber.Ctx) error {
	cityID := ctx.Params("cityId")

	if err := c.ZoneService.ClearZones(ctx.UserContext(), cityID); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"message": "All zones cleared successfully",
	})
}
