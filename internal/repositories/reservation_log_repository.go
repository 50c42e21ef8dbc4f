package repositories

import (
	"restaurant-backend/internal/apperrors"
	"restaurant-backend/internal/models"

	"gorm.io/gorm"
)

// ReservationLogRepository appends audit rows for reservation lifecycle
// events. Writes always happen inside the same transaction as the state
// change they describe, so the audit trail can never diverge from the
// reservations table.
type ReservationLogRepository struct {
	db *gorm.DB
}

// NewReservationLogRepository creates a new ReservationLogRepository instance.
func NewReservationLogRepository(db *gorm.DB) *ReservationLogRepository {
	return &ReservationLogRepository{db: db}
}

// Append writes one audit record inside tx.
func (r *ReservationLogRepository) Append(tx *gorm.DB, log *models.ReservationLog) error {
	if err := tx.Create(log).Error; err != nil {
		return apperrors.Wrap(apperrors.CodeDatabase, "failed to append reservation log", err)
	}
	return nil
}

// ListByReservation returns the audit trail for one reservation, oldest first.
func (r *ReservationLogRepository) ListByReservation(reservationID uint) ([]models.ReservationLog, error) {
	var logs []models.ReservationLog
	err := r.db.
		Where("reservation_id = ?", reservationID).
		Order("created_at ASC").
		Find(&logs).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDatabase, "failed to list reservation logs", err)
	}
	return logs, nil
}
