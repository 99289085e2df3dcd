package svr

import (
	"github.com/gofiber/fiber/v2"
)

// API carries the public zoning endpoints under /api.
type API struct {
	fiber.Router
}

// Meta carries operational endpoints (health, version) under /api/_.
type Meta struct {
	fiber.Router
}

func CreateEndpointGroups(app *fiber.App) (*API, *Meta) {
	api := app.Group("/api")
	meta := app.Group("/api/_")

	return &API{Router: api}, &Meta{Router: meta}
}
