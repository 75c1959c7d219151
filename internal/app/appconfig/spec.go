package appconfig

import (
	"time"

	"exusiai.dev/roadmap-tracker/internal/app/appcontext"
)

type ConfigSpec struct {
	// ServiceAddress is the listen address for the HTTP service.
	ServiceAddress string `required:"true" split_words:"true" default:"localhost:9010"`

	// DevMode to indicate development mode. When true, the program would log at trace level, mount pprof
	// and provide a more contextual message when encountered a panic.
	DevMode bool `split_words:"true"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// LogFile is the path of the rotated log file. Leaving this empty disables file logging.
	LogFile string `split_words:"true" default:"logs/app.log"`

	// TrustedProxies is a list of trusted proxies that are trusted to report a real IP via the X-Forwarded-For header.
	TrustedProxies []string `required:"true" split_words:"true" default:"::1,127.0.0.1"`

	// HTTPServerShutdownTimeout is the timeout for the HTTP server to shut down gracefully.
	HTTPServerShutdownTimeout time.Duration `required:"true" split_words:"true" default:"10s"`

	// TracingEnabled to indicate whether to enable OpenTelemetry tracing. Spans are written to stdout.
	TracingEnabled bool `split_words:"true"`

	// SentryDSN is the DSN of the Sentry server. See https://pkg.go.dev/github.com/getsentry/sentry-go#ClientOptions
	SentryDSN string `split_words:"true"`

	// CatalogPath points to a curriculum JSON file that replaces the embedded one.
	CatalogPath string `split_words:"true"`

	// StorageDriver selects where progress is persisted.
	// Valid values are: memory, sqlite, redis, postgres.
	StorageDriver StorageDriver `required:"true" split_words:"true" default:"sqlite"`

	// StorageKey is the key of the single slot progress is saved under.
	StorageKey string `required:"true" split_words:"true" default:"fswd_7mo_tracker_v1"`

	// SQLitePath is the database file used by the sqlite storage driver.
	SQLitePath string `envconfig:"SQLITE_PATH" default:"data/tracker.db"`

	// RedisURL is the URL of the Redis server used by the redis storage driver. See
	// https://pkg.go.dev/github.com/redis/go-redis/v9#ParseURL for more information on how to construct a Redis URL.
	RedisURL string `split_words:"true" default:"redis://127.0.0.1:6379/1"`

	// PostgresDSN is the data source name used by the postgres storage driver. See
	// https://bun.uptrace.dev/postgres/#pgdriver for more details on how to construct a PostgreSQL DSN.
	PostgresDSN string `split_words:"true"`

	PostgresMaxOpenConns    int           `split_words:"true" default:"4"`
	PostgresConnMaxLifeTime time.Duration `split_words:"true" default:"5m"`

	BunDebugVerbose bool `split_words:"true"`

	// ExportFilename is the base name of exported attachments; the extension is appended per format.
	ExportFilename string `required:"true" split_words:"true" default:"fullstack-7mo-progress"`
}

type Config struct {
	// ConfigSpec holds the values parsed from the environment.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}
