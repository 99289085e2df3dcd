package controller

import (
	"go.uber.org/fx"

	controllerapi "github.com/lungsod/zoning-backend/internal/controller/api"
	controllermeta "github.com/lungsod/zoning-backend/internal/controller/meta"
)

func Module() fx.Option {
	return fx.Module("controller",
		controllerapi.Module(),
		controllermeta.Module(),
	)
}
