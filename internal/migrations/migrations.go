package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed *.sql
var MigrationFiles embed.FS

const migrationsTable = "reelshop_schema_migrations"

// RunMigrations brings the catalog and watch-event schema up to date.
// With autoMigrate off it only reports the current version; a dirty version
// left by an interrupted run is repaired either way.
func RunMigrations(db *sql.DB, autoMigrate bool) error {
	m, err := newMigrator(db)
	if err != nil {
		return err
	}

	version, err := currentVersion(m)
	if err != nil {
		return err
	}

	if !autoMigrate {
		slog.Info("[Migrations] Auto-migration disabled", "schema_version", version)
		return nil
	}

	switch err := m.Up(); {
	case errors.Is(err, migrate.ErrNoChange):
		slog.Info("[Migrations] Schema already current", "schema_version", version)
		return nil
	case err != nil:
		return fmt.Errorf("apply migrations from version %d: %w", version, err)
	}

	applied, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("read schema version after migrating: %w", err)
	}
	slog.Info("[Migrations] Schema migrated", "from_version", version, "to_version", applied)
	return nil
}

func newMigrator(db *sql.DB) (*migrate.Migrate, error) {
	source, err := iofs.New(MigrationFiles, ".")
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}
	driver, err := postgres.WithInstance(db, &postgres.Config{MigrationsTable: migrationsTable})
	if err != nil {
		return nil, fmt.Errorf("init postgres migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("init migrator: %w", err)
	}
	return m, nil
}

// currentVersion returns the applied version (0 for an empty database),
// rolling a dirty version back one step so Up replays it. Every migration uses
// IF NOT EXISTS, so the replay is safe.
func currentVersion(m *migrate.Migrate) (uint, error) {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	if !dirty {
		return version, nil
	}

	slog.Warn("[Migrations] Schema left dirty by an interrupted run, replaying", "schema_version", version)
	target := int(version) - 1
	if target < 1 {
		target = -1 // nil version
	}
	if err := m.Force(target); err != nil {
		return 0, fmt.Errorf("reset dirty schema version %d: %w", version, err)
	}
	return uint(max(target, 0)), nil
}
