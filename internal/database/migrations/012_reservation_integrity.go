package migrations

import (
	"fmt"

	"gorm.io/gorm"
)

// ReservationIntegrity migration adds the reservation_logs audit table
// plus the database-level guards that backstop the application's
// serializable-transaction + row-lock concurrency control: a partial
// unique index rejecting two active reservations on the same table/
// date/slot, and a trigger rejecting any reservation whose (date, slot)
// has already passed.
type ReservationIntegrity struct {
	BaseMigration
}

// NewReservationIntegrity creates a new migration
func NewReservationIntegrity() *ReservationIntegrity {
	return &ReservationIntegrity{
		BaseMigration: BaseMigration{
			version: 12,
			name:    "reservation_integrity",
		},
	}
}

// Up creates reservation_logs and the integrity guards on reservations.
func (m *ReservationIntegrity) Up(db *gorm.DB) error {
	if err := db.Exec(`
		CREATE TABLE IF NOT EXISTS reservation_logs (
			id BIGSERIAL PRIMARY KEY,
			reservation_id BIGINT NOT NULL,
			reservation_date DATE NOT NULL,
			action VARCHAR(20) NOT NULL,
			actor_user_id BIGINT,
			detail TEXT,
			created_at TIMESTAMPTZ DEFAULT now()
		)
	`).Error; err != nil {
		return fmt.Errorf("failed to create reservation_logs table: %w", err)
	}

	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_reservation_logs_reservation ON reservation_logs(reservation_id, reservation_date)`).Error; err != nil {
		return fmt.Errorf("failed to create reservation_logs index: %w", err)
	}

	// Defence-in-depth against the serializable transaction + row lock:
	// two active reservations can never share a table/date/slot, even if
	// a future code path forgets to take the lock.
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_reservations_no_double_book
		ON reservations (table_id, date, slot)
		WHERE status IN ('pending', 'confirmed', 'checked_in')
	`).Error; err != nil {
		return fmt.Errorf("failed to create no-double-book unique index: %w", err)
	}

	if err := db.Exec(`
		CREATE OR REPLACE FUNCTION reject_past_reservation() RETURNS trigger AS $$
		BEGIN
			IF (NEW.date + (NEW.slot * INTERVAL '1 minute')) < now() THEN
				RAISE EXCEPTION 'cannot create or modify a reservation in the past';
			END IF;
			RETURN NEW;
		END;
		$$ LANGUAGE plpgsql
	`).Error; err != nil {
		return fmt.Errorf("failed to create reject_past_reservation function: %w", err)
	}

	if err := db.Exec(`DROP TRIGGER IF EXISTS trg_reject_past_reservation ON reservations`).Error; err != nil {
		return fmt.Errorf("failed to drop existing past-reservation trigger: %w", err)
	}

	if err := db.Exec(`
		CREATE TRIGGER trg_reject_past_reservation
		BEFORE INSERT OR UPDATE ON reservations
		FOR EACH ROW EXECUTE FUNCTION reject_past_reservation()
	`).Error; err != nil {
		return fmt.Errorf("failed to create past-reservation trigger: %w", err)
	}

	return nil
}

// Down drops the integrity guards and the reservation_logs table.
func (m *ReservationIntegrity) Down(db *gorm.DB) error {
	db.Exec(`DROP TRIGGER IF EXISTS trg_reject_past_reservation ON reservations`)
	db.Exec(`DROP FUNCTION IF EXISTS reject_past_reservation()`)
	db.Exec(`DROP INDEX IF EXISTS idx_reservations_no_double_book`)

	if err := db.Exec(`DROP TABLE IF EXISTS reservation_logs CASCADE`).Error; err != nil {
		return fmt.Errorf("failed to drop reservation_logs table: %w", err)
	}
	return nil
}
