package testentry

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"exusiai.dev/roadmap-tracker/internal/app"
	"exusiai.dev/roadmap-tracker/internal/app/appcontext"
)

// Populate starts a fully wired app backed by the in-memory storage driver and
// fills targets from its graph. The app is stopped when the test ends.
func Populate(t *testing.T, targets ...any) {
	t.Helper()

	t.Setenv("TRACKER_STORAGE_DRIVER", "memory")
	t.Setenv("TRACKER_LOG_FILE", "")
	t.Setenv("TRACKER_CATALOG_PATH", "")

	opts := app.Options(appcontext.Declare(appcontext.EnvServer),
		// for testing, fx logs are too annoying
		fx.NopLogger,
		fx.Populate(targets...),
	)
	log.Logger = log.Logger.Output(zerolog.NewTestWriter(t))

	fxApp := fxtest.New(t, opts...)
	fxApp.RequireStart()
	t.Cleanup(fxApp.RequireStop)
}
