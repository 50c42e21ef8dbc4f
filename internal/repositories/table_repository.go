package repositories

import (
	"context"
	"errors"

	"restaurant-backend/internal/apperrors"
	"restaurant-backend/internal/models"

	"gorm.io/gorm"
)

// TableRepository handles physical-table lookups used for availability
// and table-selection. Row-locking for the actual booking critical
// section lives on ReservationRepository.LockTable, since that lock must
// be taken inside the same transaction as the overlap count.
type TableRepository struct {
	db *gorm.DB
}

// NewTableRepository creates a new TableRepository instance.
func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{db: db}
}

// ListEligible returns active, available tables at restaurantID whose
// capacity range fits partySize, ordered by max capacity ascending so
// table selection prefers the smallest table that still fits the party
// (first-fit, minimizing wasted capacity).
func (r *TableRepository) ListEligible(ctx context.Context, restaurantID uint, partySize int) ([]models.Table, error) {
	var tables []models.Table
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND is_active = ? AND status = ?", restaurantID, true, models.TableStatusAvailable).
		Where("min_capacity <= ? AND max_capacity >= ?", partySize, partySize).
		Order("max_capacity ASC, number ASC").
		Find(&tables).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDatabase, "failed to list eligible tables", err)
	}
	return tables, nil
}

// GetByID fetches a table without locking, for read paths (e.g. display).
func (r *TableRepository) GetByID(ctx context.Context, id uint) (*models.Table, error) {
	var table models.Table
	if err := r.db.WithContext(ctx).First(&table, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "table not found")
		}
		return nil, apperrors.Wrap(apperrors.CodeDatabase, "failed to fetch table", err)
	}
	return &table, nil
}

// ListByRestaurant returns every table belonging to a restaurant.
func (r *TableRepository) ListByRestaurant(ctx context.Context, restaurantID uint) ([]models.Table, error) {
	var tables []models.Table
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("number ASC").
		Find(&tables).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDatabase, "failed to list tables", err)
	}
	return tables, nil
}

// Create inserts a new table.
func (r *TableRepository) Create(ctx context.Context, table *models.Table) error {
	if err := r.db.WithContext(ctx).Create(table).Error; err != nil {
		return apperrors.Wrap(apperrors.CodeDatabase, "failed to create table", err)
	}
	return nil
}
