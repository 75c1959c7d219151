package appconfig

import (
	"fmt"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"exusiai.dev/roadmap-tracker/internal/app/appcontext"
	"exusiai.dev/roadmap-tracker/internal/pkg/kvslot"
	"exusiai.dev/roadmap-tracker/internal/pkg/projectpath"
)

const envPrefix = "tracker"

func Parse(ctx appcontext.Ctx) (*Config, error) {
	err := godotenv.Load(filepath.Join(projectpath.Root, ".env"))
	if err != nil {
		log.Warn().Err(err).Msg("failed to load .env file")
	}

	var config ConfigSpec
	err = envconfig.Process(envPrefix, &config)
	if err != nil {
		_ = envconfig.Usage(envPrefix, &config)
		return nil, fmt.Errorf("failed to parse configuration: %w. More info on how to configure the tracker is located at https://pkg.go.dev/exusiai.dev/roadmap-tracker/internal/app/appconfig#ConfigSpec", err)
	}

	if config.StorageDriver == StorageDriver(kvslot.DriverPostgres) && config.PostgresDSN == "" {
		return nil, fmt.Errorf("failed to parse configuration: TRACKER_POSTGRES_DSN is required when the storage driver is %q", config.StorageDriver)
	}

	return &Config{
		ConfigSpec: config,
		AppContext: ctx,
	}, nil
}
