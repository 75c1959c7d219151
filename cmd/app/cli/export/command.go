package export

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "exusiai.dev/roadmap-tracker/cmd/app/cli"
	"exusiai.dev/roadmap-tracker/internal/service"
)

type CommandDeps struct {
	fx.In

	ExportService *service.Export
}

func Command() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "write the saved progress to a file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Usage: "json or xlsx",
				Value: "json",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output path; defaults to the configured export filename in the working directory",
			},
		},
		Action: func(c *cli.Context) error {
			return cliapp.WithDeps(func(deps CommandDeps) error {
				return run(c, deps)
			})
		},
	}
}

func run(c *cli.Context, deps CommandDeps) error {
	var (
		result *service.ExportResult
		err    error
	)
	switch c.String("format") {
	case "json":
		result, err = deps.ExportService.JSON()
	case "xlsx":
		result, err = deps.ExportService.XLSX()
	default:
		return errors.Errorf("unknown export format %q", c.String("format"))
	}
	if err != nil {
		return err
	}

	out := c.String("out")
	if out == "" {
		out = result.Filename
	}
	if err := os.WriteFile(out, result.Body, 0o644); err != nil {
		return errors.Wrap(err, "write export")
	}

	log.Info().
		Str("evt.name", "cli.export.written").
		Str("path", out).
		Int("bytes", len(result.Body)).
		Msg("progress exported")
	return nil
}
