package reset

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "exusiai.dev/roadmap-tracker/cmd/app/cli"
	"exusiai.dev/roadmap-tracker/internal/service"
)

type CommandDeps struct {
	fx.In

	ProgressService *service.Progress
}

func Command() *cli.Command {
	return &cli.Command{
		Name:  "reset",
		Usage: "clear all saved progress",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "yes",
				Usage: "confirm that all progress should be removed",
			},
		},
		Action: func(c *cli.Context) error {
			if !c.Bool("yes") {
				return cli.Exit("Reset all progress? Re-run with --yes to confirm.", 1)
			}
			return cliapp.WithDeps(func(deps CommandDeps) error {
				return deps.ProgressService.Reset(c.Context, true)
			})
		},
	}
}
