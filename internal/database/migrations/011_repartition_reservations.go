package migrations

import (
	"fmt"

	"gorm.io/gorm"
)

// RepartitionReservations replaces the simple reservations table created
// by CreateTables with the reservation engine's monthly range-partitioned
// layout: composite primary key (id, date), a table reference instead of
// a free-text table number, and the full reservation-engine column set.
type RepartitionReservations struct {
	BaseMigration
}

// NewRepartitionReservations creates a new migration
func NewRepartitionReservations() *RepartitionReservations {
	return &RepartitionReservations{
		BaseMigration: BaseMigration{
			version: 11,
			name:    "repartition_reservations",
		},
	}
}

// Up drops the non-partitioned reservations table and recreates it as a
// partitioned parent with twelve consecutive months attached, starting
// with the current month, each a monthly range partition on (date).
func (m *RepartitionReservations) Up(db *gorm.DB) error {
	if err := db.Exec(`DROP TABLE IF EXISTS reservations CASCADE`).Error; err != nil {
		return fmt.Errorf("failed to drop legacy reservations table: %w", err)
	}

	if err := db.Exec(`
		CREATE TABLE reservations (
			id BIGSERIAL NOT NULL,
			date DATE NOT NULL,
			restaurant_id BIGINT NOT NULL REFERENCES restaurants(id),
			user_id BIGINT NOT NULL REFERENCES users(id),
			table_id BIGINT NOT NULL REFERENCES tables(id),
			slot INTEGER NOT NULL,
			duration_minutes INTEGER NOT NULL,
			party_size INTEGER NOT NULL,
			guest_name TEXT NOT NULL,
			guest_phone TEXT,
			guest_email TEXT,
			special_requests TEXT,
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			channel VARCHAR(20) NOT NULL DEFAULT 'web',
			metadata JSONB,
			created_at TIMESTAMPTZ DEFAULT now(),
			confirmed_at TIMESTAMPTZ,
			checked_in_at TIMESTAMPTZ,
			completed_at TIMESTAMPTZ,
			cancelled_at TIMESTAMPTZ,
			PRIMARY KEY (id, date)
		) PARTITION BY RANGE (date)
	`).Error; err != nil {
		return fmt.Errorf("failed to create partitioned reservations table: %w", err)
	}

	if err := db.Exec(`CREATE SEQUENCE IF NOT EXISTS reservations_id_seq OWNED BY reservations.id`).Error; err != nil {
		return fmt.Errorf("failed to create reservations id sequence: %w", err)
	}
	if err := db.Exec(`ALTER TABLE reservations ALTER COLUMN id SET DEFAULT nextval('reservations_id_seq')`).Error; err != nil {
		return fmt.Errorf("failed to attach reservations id sequence: %w", err)
	}

	if err := createMonthlyPartitions(db, "reservations", 12); err != nil {
		return err
	}

	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_reservations_restaurant_date ON reservations(restaurant_id, date)`).Error; err != nil {
		return fmt.Errorf("failed to create restaurant/date index: %w", err)
	}
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_reservations_user ON reservations(user_id)`).Error; err != nil {
		return fmt.Errorf("failed to create user index: %w", err)
	}
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_reservations_table_date ON reservations(table_id, date)`).Error; err != nil {
		return fmt.Errorf("failed to create table/date index: %w", err)
	}

	return nil
}

// Down drops the partitioned reservations table and its partitions.
func (m *RepartitionReservations) Down(db *gorm.DB) error {
	if err := db.Exec(`DROP TABLE IF EXISTS reservations CASCADE`).Error; err != nil {
		return fmt.Errorf("failed to drop reservations table: %w", err)
	}
	if err := db.Exec(`DROP SEQUENCE IF EXISTS reservations_id_seq`).Error; err != nil {
		return fmt.Errorf("failed to drop reservations id sequence: %w", err)
	}
	return nil
}

// createMonthlyPartitions attaches `months` consecutive monthly range
// partitions to parent, starting at the first day of the current month.
// Postgres range partitions cannot overlap and every row must land in
// one, so the partition boundaries are computed in SQL from CURRENT_DATE
// rather than hardcoded, keeping the migration re-runnable at any time.
func createMonthlyPartitions(db *gorm.DB, parent string, months int) error {
	for i := 0; i < months; i++ {
		partitionSQL := fmt.Sprintf(`
			DO $$
			DECLARE
				start_date DATE := date_trunc('month', CURRENT_DATE) + INTERVAL '%d month';
				end_date DATE := date_trunc('month', CURRENT_DATE) + INTERVAL '%d month';
				partition_name TEXT := '%s_' || to_char(start_date, 'YYYY_MM');
			BEGIN
				EXECUTE format(
					'CREATE TABLE IF NOT EXISTS %%I PARTITION OF %s FOR VALUES FROM (%%L) TO (%%L)',
					partition_name, start_date, end_date
				);
			END $$;
		`, i, i+1, parent, parent)

		if err := db.Exec(partitionSQL).Error; err != nil {
			return fmt.Errorf("failed to create partition %d of %s: %w", i, parent, err)
		}
	}
	return nil
}
