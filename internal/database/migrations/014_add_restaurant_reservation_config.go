package migrations

import (
	"fmt"

	"gorm.io/gorm"
)

// AddRestaurantReservationConfig adds the per-restaurant configuration
// columns the reservation engine reads during validation and
// availability computation: timezone, business hours, advance-booking
// window, and slot/reservation durations.
type AddRestaurantReservationConfig struct {
	BaseMigration
}

// NewAddRestaurantReservationConfig creates a new migration
func NewAddRestaurantReservationConfig() *AddRestaurantReservationConfig {
	return &AddRestaurantReservationConfig{
		BaseMigration: BaseMigration{
			version: 14,
			name:    "add_restaurant_reservation_config",
		},
	}
}

// Up adds the reservation engine's configuration columns to restaurants.
func (m *AddRestaurantReservationConfig) Up(db *gorm.DB) error {
	statements := []string{
		`ALTER TABLE restaurants ADD COLUMN IF NOT EXISTS timezone VARCHAR(50) DEFAULT 'UTC'`,
		`ALTER TABLE restaurants ADD COLUMN IF NOT EXISTS business_hours JSONB DEFAULT '{}'::jsonb`,
		`ALTER TABLE restaurants ADD COLUMN IF NOT EXISTS min_advance_hours INTEGER DEFAULT 1`,
		`ALTER TABLE restaurants ADD COLUMN IF NOT EXISTS max_advance_days INTEGER DEFAULT 90`,
		`ALTER TABLE restaurants ADD COLUMN IF NOT EXISTS default_reservation_duration_minutes INTEGER DEFAULT 120`,
		`ALTER TABLE restaurants ADD COLUMN IF NOT EXISTS cancellation_window_minutes INTEGER DEFAULT 60`,
		`ALTER TABLE restaurants ADD COLUMN IF NOT EXISTS slot_duration_minutes INTEGER DEFAULT 30`,
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to apply %q: %w", stmt, err)
		}
	}

	return nil
}

// Down removes the reservation engine's configuration columns.
func (m *AddRestaurantReservationConfig) Down(db *gorm.DB) error {
	if err := db.Exec(`
		ALTER TABLE restaurants
		DROP COLUMN IF EXISTS timezone,
		DROP COLUMN IF EXISTS business_hours,
		DROP COLUMN IF EXISTS min_advance_hours,
		DROP COLUMN IF EXISTS max_advance_days,
		DROP COLUMN IF EXISTS default_reservation_duration_minutes,
		DROP COLUMN IF EXISTS cancellation_window_minutes,
		DROP COLUMN IF EXISTS slot_duration_minutes
	`).Error; err != nil {
		return fmt.Errorf("failed to drop restaurant reservation config columns: %w", err)
	}
	return nil
}
