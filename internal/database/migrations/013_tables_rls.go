package migrations

import (
	"fmt"

	"gorm.io/gorm"
)

// TablesRLS migration extends row level security to the physical tables
// (seating) entity, which carries restaurant_id like the other
// tenant-isolated tables added before it.
type TablesRLS struct {
	BaseMigration
}

// NewTablesRLS creates a new migration
func NewTablesRLS() *TablesRLS {
	return &TablesRLS{
		BaseMigration: BaseMigration{
			version: 13,
			name:    "tables_rls",
		},
	}
}

// Up enables RLS and creates the isolation policy on tables.
func (m *TablesRLS) Up(db *gorm.DB) error {
	if err := db.Exec(`ALTER TABLE tables ENABLE ROW LEVEL SECURITY`).Error; err != nil {
		return fmt.Errorf("failed to enable RLS on tables: %w", err)
	}

	db.Exec(`DROP POLICY IF EXISTS isolate_tables ON tables`)

	condition := "restaurant_id = current_setting('app.current_restaurant', true)::INTEGER"
	sql := fmt.Sprintf(
		"CREATE POLICY isolate_tables ON tables FOR ALL TO restaurant_app_user USING (%s) WITH CHECK (%s)",
		condition, condition,
	)
	if err := db.Exec(sql).Error; err != nil {
		return fmt.Errorf("failed to create isolate_tables policy: %w", err)
	}

	return nil
}

// Down drops the policy and disables RLS on tables.
func (m *TablesRLS) Down(db *gorm.DB) error {
	db.Exec(`DROP POLICY IF EXISTS isolate_tables ON tables`)
	if err := db.Exec(`ALTER TABLE tables DISABLE ROW LEVEL SECURITY`).Error; err != nil {
		return fmt.Errorf("failed to disable RLS on tables: %w", err)
	}
	return nil
}
