package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"exusiai.dev/roadmap-tracker/cmd/app/cli/export"
	"exusiai.dev/roadmap-tracker/cmd/app/cli/reset"
	"exusiai.dev/roadmap-tracker/cmd/app/cli/status"
	"exusiai.dev/roadmap-tracker/cmd/app/server"
	"exusiai.dev/roadmap-tracker/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "tracker",
		Usage:       "7-month full-stack curriculum checklist",
		Description: "Serves the curriculum checklist over HTTP and keeps day-by-day progress in a single storage slot. Built with Go, fiber and go.uber.org/fx.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
			export.Command(),
			reset.Command(),
			status.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
