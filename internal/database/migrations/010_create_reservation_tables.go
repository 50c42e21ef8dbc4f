package migrations

import (
	"fmt"

	"gorm.io/gorm"
)

// CreatePhysicalTables migration creates the physical restaurant tables
// (seating) that reservations are booked against.
type CreatePhysicalTables struct {
	BaseMigration
}

// NewCreatePhysicalTables creates a new migration
func NewCreatePhysicalTables() *CreatePhysicalTables {
	return &CreatePhysicalTables{
		BaseMigration: BaseMigration{
			version: 10,
			name:    "create_physical_tables",
		},
	}
}

// Up creates the `tables` table
func (m *CreatePhysicalTables) Up(db *gorm.DB) error {
	if err := db.Exec(`
		CREATE TABLE IF NOT EXISTS tables (
			id BIGSERIAL PRIMARY KEY,
			restaurant_id BIGINT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			number TEXT NOT NULL,
			min_capacity INTEGER NOT NULL DEFAULT 1,
			max_capacity INTEGER NOT NULL,
			is_active BOOLEAN DEFAULT true,
			status VARCHAR(20) DEFAULT 'available',
			created_at TIMESTAMPTZ,
			updated_at TIMESTAMPTZ
		)
	`).Error; err != nil {
		return fmt.Errorf("failed to create tables table: %w", err)
	}

	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_tables_restaurant_id ON tables(restaurant_id)`).Error; err != nil {
		return fmt.Errorf("failed to create tables restaurant_id index: %w", err)
	}

	return nil
}

// Down drops the `tables` table
func (m *CreatePhysicalTables) Down(db *gorm.DB) error {
	if err := db.Exec(`DROP TABLE IF EXISTS tables CASCADE`).Error; err != nil {
		return fmt.Errorf("failed to drop tables table: %w", err)
	}
	return nil
}
