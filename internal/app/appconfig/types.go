package appconfig

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"exusiai.dev/roadmap-tracker/internal/pkg/kvslot"
)

type StorageDriver kvslot.Driver

func (d *StorageDriver) Decode(value string) error {
	v := kvslot.Driver(strings.ToLower(strings.TrimSpace(value)))
	if !lo.Contains(kvslot.Drivers, v) {
		return fmt.Errorf("invalid storage driver %q: expected one of %v", value, kvslot.Drivers)
	}
	*d = StorageDriver(v)
	return nil
}
