package infra

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"exusiai.dev/roadmap-tracker/internal/app/appconfig"
	"exusiai.dev/roadmap-tracker/internal/pkg/kvslot"
)

// Slot opens the progress storage slot on the configured driver. The backing
// connection is closed when the app stops.
func Slot(conf *appconfig.Config, lc fx.Lifecycle) (kvslot.Slot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	var (
		slot kvslot.Slot
		err  error
	)
	switch kvslot.Driver(conf.StorageDriver) {
	case kvslot.DriverMemory:
		slot = kvslot.NewMemory(conf.StorageKey)
	case kvslot.DriverSQLite:
		slot, err = kvslot.OpenSQLite(ctx, conf.SQLitePath, conf.StorageKey)
	case kvslot.DriverRedis:
		client, rerr := Redis(ctx, conf)
		if rerr != nil {
			return nil, rerr
		}
		slot = kvslot.NewRedis(client, conf.StorageKey)
	case kvslot.DriverPostgres:
		db, perr := Postgres(ctx, conf)
		if perr != nil {
			return nil, perr
		}
		slot, err = kvslot.NewPostgres(ctx, db, conf.StorageKey)
		if err != nil {
			_ = db.Close()
		}
	default:
		err = errors.Errorf("unknown storage driver %q", conf.StorageDriver)
	}
	if err != nil {
		log.Error().Err(err).Str("driver", string(conf.StorageDriver)).Msg("infra: slot: failed to open storage")
		return nil, err
	}

	log.Info().
		Str("evt.name", "infra.slot.opened").
		Str("driver", string(conf.StorageDriver)).
		Str("key", conf.StorageKey).
		Msg("progress storage ready")

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return slot.Close()
		},
	})

	return slot, nil
}
