package app

import (
	"time"

	"go.uber.org/fx"

	"exusiai.dev/roadmap-tracker/internal/app/appconfig"
	"exusiai.dev/roadmap-tracker/internal/app/appcontext"
	"exusiai.dev/roadmap-tracker/internal/controller"
	"exusiai.dev/roadmap-tracker/internal/infra"
	"exusiai.dev/roadmap-tracker/internal/pkg/logger"
	"exusiai.dev/roadmap-tracker/internal/repo"
	"exusiai.dev/roadmap-tracker/internal/server"
	"exusiai.dev/roadmap-tracker/internal/service"
)

func Options(ctx appcontext.Ctx, additionalOpts ...fx.Option) []fx.Option {
	conf, err := appconfig.Parse(ctx)
	if err != nil {
		panic(err)
	}

	// logger and configuration are the only two things that are not in the fx graph
	// because some other packages need them to be initialized before fx starts
	logger.Configure(conf)

	baseOpts := []fx.Option{
		// fx meta
		fx.WithLogger(logger.Fx),

		// Misc
		fx.Supply(conf),

		// Infrastructures
		infra.Module(),

		// Servers
		server.Module(),

		// Repositories
		repo.Module(),

		// Services
		service.Module(),

		// Global Singleton Inits: Keep those before controllers as controllers are also fx#Invoke
		// functions which are called in the order of their registration.
		fx.Invoke(infra.SentryInit),

		// Controllers
		controller.Module(),

		// fx Extra Options
		fx.StartTimeout(10 * time.Second),
		// fiber's Shutdown() is bounded by its IdleTimeout; this only guards against a stuck shutdown.
		fx.StopTimeout(conf.HTTPServerShutdownTimeout + 5*time.Second),
	}

	return append(baseOpts, additionalOpts...)
}

func New(ctx appcontext.Ctx, additionalOpts ...fx.Option) *fx.App {
	return fx.New(Options(ctx, additionalOpts...)...)
}
