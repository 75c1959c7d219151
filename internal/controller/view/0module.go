package view

import (
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("controller.view", fx.Invoke(
		RegisterPage,
	))
}
