package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/lungsod/zoning-backend/internal/server/svr"
	"github.com/lungsod/zoning-backend/internal/service"
)

type Export struct {
	fx.In

	ExportService *service.Export
}

func RegisterExport(api *svr.API, c Export) {
	api.Get("/export/:cityId", c.Export)
}

func (c *Export) Export(ctx *fiber.Ctx) error {
	cityID := ctx.Params("cityId")

	snapshot, err := c.ExportService.Export(ctx.UserContext(), cityID)
	if err != nil {
		return err
	}

	return ctx.JSON(snapshot)
}
