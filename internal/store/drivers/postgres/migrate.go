package postgres

import (
	"errors"
	"strings"

	"github.com/apitrail/apitrail/internal/store/drivers/postgres/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// ApplyMigrations applies any pending database migrations. It uses the
// embedded migration files which will be compiled into the binary.
// golang-migrate opens its own short-lived connection from the DSN; the
// pool is untouched.
func (m *Store) ApplyMigrations() error {
	// 1. Create the iofs (embedded filesystem) source driver
	migrationsFilesystem, err := iofs.New(migrations.Migrations, ".")
	if err != nil {
		return err
	}

	// 2. Create the migrate instance to run migrations
	instance, err := migrate.NewWithSourceInstance("iofs", migrationsFilesystem, migrateURL(m.dsn))
	if err != nil {
		return err
	}

	// 3. Apply all up migrations, then release the migration connection
	err = instance.Up()
	srcErr, dbErr := instance.Close()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	if srcErr != nil {
		return srcErr
	}
	return dbErr
}

// migrateURL rewrites postgres:// and postgresql:// DSNs to the pgx5://
// scheme golang-migrate's pgx/v5 driver registers itself under.
func migrateURL(dsn string) string {
	if rest, ok := strings.CutPrefix(dsn, "postgres://"); ok {
		return "pgx5://" + rest
	}
	if rest, ok := strings.CutPrefix(dsn, "postgresql://"); ok {
		return "pgx5://" + rest
	}
	return dsn
}
