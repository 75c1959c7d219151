package status

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "exusiai.dev/roadmap-tracker/cmd/app/cli"
	"exusiai.dev/roadmap-tracker/internal/model"
	"exusiai.dev/roadmap-tracker/internal/service"
)

type CommandDeps struct {
	fx.In

	ProgressService *service.Progress
}

func Command() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "print overall and per-phase completion",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "only list weeks matching this search",
			},
		},
		Action: func(c *cli.Context) error {
			return cliapp.WithDeps(func(deps CommandDeps) error {
				Print(c.App.Writer, deps.ProgressService.Overview(c.String("query")), c.IsSet("query"))
				return nil
			})
		},
	}
}

// Print writes a plain-text summary of o. Weeks are listed only when withWeeks
// is set.
func Print(w io.Writer, o *model.Overview, withWeeks bool) {
	fmt.Fprintf(w, "Overall: %d / %d days • %d%%\n", o.Completed, o.Total, o.Percent)
	for _, p := range o.Phases {
		fmt.Fprintf(w, "%s: %s  %d / %d days • %d%%\n", p.ID, p.Name, p.Completed, p.Total, p.Percent)
		if !withWeeks {
			continue
		}
		for _, wk := range p.Weeks {
			mark := " "
			if wk.FullyComplete {
				mark = "x"
			}
			fmt.Fprintf(w, "  [%s] Week %d: %s (%d/%d)\n", mark, wk.ID, wk.Title, wk.Completed, wk.Total)
		}
	}
}
