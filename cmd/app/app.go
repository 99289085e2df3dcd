package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/lungsod/zoning-backend/cmd/app/server"
	"github.com/lungsod/zoning-backend/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "zoning-backend",
		Description: "Zoning map backend serving zones, zone types and regions per city. Built with Go, fiber, bun and go.uber.org/fx. Uses Redis as cache.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
