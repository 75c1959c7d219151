package appconfig

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exusiai.dev/roadmap-tracker/internal/app/appcontext"
	"exusiai.dev/roadmap-tracker/internal/pkg/kvslot"
)

func TestStorageDriverDecode(t *testing.T) {
	testCases := []struct {
		input   string
		want    kvslot.Driver
		wantErr bool
	}{
		{input: "memory", want: kvslot.DriverMemory},
		{input: " SQLite ", want: kvslot.DriverSQLite},
		{input: "redis", want: kvslot.DriverRedis},
		{input: "postgres", want: kvslot.DriverPostgres},
		{input: "mongodb", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			var d StorageDriver
			err := d.Decode(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, StorageDriver(tc.want), d)
		})
	}
}

func TestParseRequiresPostgresDSN(t *testing.T) {
	t.Setenv("TRACKER_STORAGE_DRIVER", "postgres")
	t.Setenv("TRACKER_POSTGRES_DSN", "")

	_, err := Parse(appcontext.Declare(appcontext.EnvCLI))
	assert.Error(t, err)
}

func TestParseDefaults(t *testing.T) {
	// restored by t.Setenv on cleanup
	for _, key := range []string{"TRACKER_STORAGE_DRIVER", "TRACKER_STORAGE_KEY", "TRACKER_EXPORT_FILENAME"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	conf, err := Parse(appcontext.Declare(appcontext.EnvCLI))
	require.NoError(t, err)
	assert.Equal(t, StorageDriver(kvslot.DriverSQLite), conf.StorageDriver)
	assert.Equal(t, "fswd_7mo_tracker_v1", conf.StorageKey)
	assert.Equal(t, "fullstack-7mo-progress", conf.ExportFilename)
}
