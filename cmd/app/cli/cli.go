package cli

import (
	"context"
	"time"

	"go.uber.org/fx"

	"exusiai.dev/roadmap-tracker/internal/app"
	"exusiai.dev/roadmap-tracker/internal/app/appcontext"
)

// WithDeps starts the app in CLI mode, populates a T from the graph, runs fn
// and stops the app so storage connections are closed.
func WithDeps[T any](fn func(deps T) error) error {
	var deps T
	fxApp := app.New(appcontext.Declare(appcontext.EnvCLI), fx.Populate(&deps))

	startCtx, cancel := context.WithTimeout(context.Background(), fxApp.StartTimeout())
	defer cancel()
	if err := fxApp.Start(startCtx); err != nil {
		return err
	}

	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = fxApp.Stop(stopCtx)
	}()

	return fn(deps)
}
