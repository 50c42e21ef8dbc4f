package migrations

import (
	"restaurant-backend/internal/config"
)

// All returns every migration known to the system, in the order they were
// added. Runner sorts by version before applying them, so this list does
// not need to stay in numeric order, but it is kept that way for
// readability.
func All(cfg *config.Config) []Migration {
	return []Migration{
		NewCreateRestaurantsTable(),
		NewCreateUsersTable(),
		NewCreateTables(),
		NewAddRestaurantKamFK(),
		NewSyncSequences(),
		NewEnableRLS(),
		NewCreateRLSPolicies(),
		NewBootstrapPlatform(cfg),
		NewAddUserFields(),
		NewCreatePhysicalTables(),
		NewRepartitionReservations(),
		NewReservationIntegrity(),
		NewTablesRLS(),
		NewAddRestaurantReservationConfig(),
	}
}
