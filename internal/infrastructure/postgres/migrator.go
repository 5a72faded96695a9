package postgres

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
)

// MigrationStatus is the schema version of the invoice register.
type MigrationStatus struct {
	Version uint
	Dirty   bool
	// Applied is false when no migration has run yet.
	Applied bool
}

func newMigrator(databaseURL, migrationsPath string) (*migrate.Migrate, error) {
	m, err := migrate.New("file://"+migrationsPath, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open migrations %s: %w", migrationsPath, err)
	}

	return m, nil
}

// RunMigrations applies all pending migrations of the invoice register.
func RunMigrations(databaseURL, migrationsPath string, logger zerolog.Logger) error {
	return withMigrator(databaseURL, migrationsPath, func(m *migrate.Migrate) error {
		err := m.Up()
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info().Msg("invoice register schema is up to date")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		logMigrated(m, logger, "invoice register schema migrated")
		return nil
	})
}

// RunMigrationsDown rolls back the last migration.
func RunMigrationsDown(databaseURL, migrationsPath string, logger zerolog.Logger) error {
	return withMigrator(databaseURL, migrationsPath, func(m *migrate.Migrate) error {
		if err := m.Steps(-1); err != nil {
			return fmt.Errorf("failed to roll back migration: %w", err)
		}

		logMigrated(m, logger, "invoice register schema rolled back")
		return nil
	})
}

// Status reports the applied schema version.
func Status(databaseURL, migrationsPath string) (MigrationStatus, error) {
	var status MigrationStatus

	err := withMigrator(databaseURL, migrationsPath, func(m *migrate.Migrate) error {
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read schema version: %w", err)
		}

		status = MigrationStatus{Version: version, Dirty: dirty, Applied: true}
		return nil
	})

	return status, err
}

func withMigrator(databaseURL, migrationsPath string, fn func(*migrate.Migrate) error) error {
	m, err := newMigrator(databaseURL, migrationsPath)
	if err != nil {
		return err
	}
	defer m.Close()

	return fn(m)
}

func logMigrated(m *migrate.Migrate, logger zerolog.Logger, msg string) {
	version, dirty, err := m.Version()
	if err != nil {
		logger.Info().Msg(msg)
		return
	}
	logger.Info().Uint("version", version).Bool("dirty", dirty).Msg(msg)
}
