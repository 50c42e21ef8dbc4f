package database

import (
	"fmt"

	"restaurant-backend/internal/config"
	"restaurant-backend/internal/database/migrations"

	"gorm.io/gorm"
)

// RunMigrations runs all pending database migrations (up), including the
// reservation engine's physical tables, partitioned reservations, and
// integrity guards. This delegates to the versioned migrations.Runner so
// that `--migrate`, `--migrate-down`, and `--migrate-status` all operate
// on the same migration history in schema_migrations.
func RunMigrations(db *gorm.DB, cfg *config.Config) error {
	runner := migrations.NewRunner(db, migrations.All(cfg))
	if err := runner.Up(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	fmt.Println("Database migrations completed successfully")
	return nil
}

// RunMigrationsDown rolls back the most recently applied migration.
func RunMigrationsDown(db *gorm.DB, cfg *config.Config) error {
	runner := migrations.NewRunner(db, migrations.All(cfg))
	return runner.Down()
}

// ShowMigrationStatus prints the applied/pending status of every known migration.
func ShowMigrationStatus(db *gorm.DB, cfg *config.Config) error {
	runner := migrations.NewRunner(db, migrations.All(cfg))
	return runner.Status()
}

