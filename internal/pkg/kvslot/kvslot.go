// Package kvslot stores a single opaque value under a fixed key. It is the
// persistence surface of the progress store: one slot, read at startup and
// overwritten after every mutation.
package kvslot

import (
	"context"

	"github.com/pkg/errors"
)

// ErrEmpty is returned by Get when nothing has been stored under the key.
var ErrEmpty = errors.New("kvslot: slot is empty")

type Slot interface {
	// Get returns the stored value, or ErrEmpty.
	Get(ctx context.Context) ([]byte, error)
	// Put overwrites the stored value.
	Put(ctx context.Context, value []byte) error
	// Delete removes the stored value. Deleting an empty slot is not an error.
	Delete(ctx context.Context) error
	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
	Close() error
}

// Driver names a Slot backend.
type Driver string

const (
	DriverMemory   Driver = "memory"
	DriverSQLite   Driver = "sqlite"
	DriverRedis    Driver = "redis"
	DriverPostgres Driver = "postgres"
)

var Drivers = []Driver{DriverMemory, DriverSQLite, DriverRedis, DriverPostgres}
