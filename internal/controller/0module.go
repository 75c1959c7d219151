package controller

import (
	"go.uber.org/fx"

	controllermeta "exusiai.dev/roadmap-tracker/internal/controller/meta"
	controllerv1 "exusiai.dev/roadmap-tracker/internal/controller/v1"
	controllerview "exusiai.dev/roadmap-tracker/internal/controller/view"
)

func Module() fx.Option {
	return fx.Module("controller",
		// Controllers (v1)
		controllerv1.Module(),

		// Controllers (meta)
		controllermeta.Module(),

		// Pages
		controllerview.Module(),
	)
}
