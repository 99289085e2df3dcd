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

type Region struct {
	fx.In

	RegionService *service.Region
}

func RegisterRegion(api *svr.API, c Region) {
	api.Get("/regions", c.GetRegions)
	api.Post("/regions", c.CreateRegion)
	api.Put("/regions/:id", c.UpdateRegion)
	api.Delete("/regions/:id", c.DeleteRegion)
}

func (c *Region) GetRegions(ctx *fiber.Ctx) error {
	cityID := ctx.Query("cityId", constant.DefaultCityID)

	regions, err := c.RegionService.GetRegions(ctx.UserContext(), cityID)
	if err != nil {
		return err
	}

	return ctx.JSON(regions)
}

func (c *Region) CreateRegion(ctx *fiber.Ctx) error {
	var req types.CreateRegionRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	region, err := c.RegionService.CreateRegion(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(region)
}

func (c *Region) UpdateRegion(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return zmerr.ErrInvalidReq.Msg("invalid request: id must be an integer")
	}

	var req types.UpdateRegionRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	region, err := c.RegionService.UpdateRegion(ctx.UserContext(), id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(region)
}

func (c *Region) DeleteRegion(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return zmerr.ErrInvalidReq.Msg("invalid request: id must be an integer")
	}

	if err := c.RegionService.DeleteRegion(ctx.UserContext(), id); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"message": "Region deleted successfully",
	})
}
