package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lungsod/zoning-backend/internal/constant"
	"github.com/lungsod/zoning-backend/internal/pkg/flog"
)

func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := flog.IDFromFiberCtx(c)
		if ok {
			c.Locals(constant.ContextKeyRequestID, id.String())
		}
		return c.Next()
	}
}
