package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"spotplan/db/migrations"
)

// ErrDirtySchema is returned when a previous migration stopped halfway and
// the schema must be repaired by hand.
var ErrDirtySchema = errors.New("snapshot schema is dirty")

// Migrate brings the snapshot schema at addr to migrations.Version and
// reports whether anything was applied.
func Migrate(addr string) (applied bool, err error) {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return false, err
	}
	defer src.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", src, addr)
	if err != nil {
		return false, err
	}
	defer mg.Close()

	current, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return false, err
	}
	if dirty {
		return false, fmt.Errorf("%w at version %d", ErrDirtySchema, current)
	}

	err = mg.Migrate(migrations.Version)
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		return false, nil
	case err != nil:
		return false, err
	}
	return true, nil
}
