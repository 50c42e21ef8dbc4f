package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"restaurant-backend/internal/apperrors"
	"restaurant-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReservationRepository handles reservation-related database operations.
// Every write that must be race-free runs inside a caller-supplied
// serializable transaction; the repository itself never opens one, so
// the service layer controls the critical section's boundaries.
type ReservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository creates a new ReservationRepository instance
func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// LockTable row-locks a table for update within tx, returning the current
// row so the caller can inspect IsActive/capacity under the lock. Must be
// called inside a transaction opened with serializable isolation.
func (r *ReservationRepository) LockTable(tx *gorm.DB, tableID uint) (*models.Table, error) {
	var table models.Table
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&table, "id = ?", tableID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "table not found")
		}
		return nil, wrapDBError("failed to lock table", err)
	}
	return &table, nil
}

// CountOverlapping returns the number of active reservations on tableID
// for date whose [slot, slot+duration) interval intersects the requested
// one. Must run inside the same transaction as LockTable so the row lock
// on the table serializes concurrent readers of this count.
func (r *ReservationRepository) CountOverlapping(tx *gorm.DB, tableID uint, date time.Time, slot, duration int) (int64, error) {
	var count int64
	err := tx.Model(&models.Reservation{}).
		Where("table_id = ? AND date = ? AND status IN ?", tableID, date, models.ActiveReservationStatuses).
		Where("slot < ? AND (slot + duration_minutes) > ?", slot+duration, slot).
		Count(&count).Error
	if err != nil {
		return 0, wrapDBError("failed to count overlapping reservations", err)
	}
	return count, nil
}

// CheckUserConflict reports whether userID already holds an active
// reservation at the same restaurant whose slot is within the
// user-window (±windowMinutes) of the requested slot, on the same date.
// Locks the candidate rows FOR UPDATE, per the spec's row-locking
// contract for this check; Postgres rejects FOR UPDATE combined with an
// aggregate, so this fetches the matching IDs rather than a COUNT.
func (r *ReservationRepository) CheckUserConflict(tx *gorm.DB, restaurantID, userID uint, date time.Time, slot, windowMinutes int) (bool, error) {
	var ids []uint
	err := tx.Model(&models.Reservation{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("restaurant_id = ? AND user_id = ? AND date = ? AND status IN ?", restaurantID, userID, date, models.ActiveReservationStatuses).
		Where("slot BETWEEN ? AND ?", slot-windowMinutes, slot+windowMinutes).
		Pluck("id", &ids).Error
	if err != nil {
		return false, wrapDBError("failed to check user conflict", err)
	}
	return len(ids) > 0, nil
}

// Insert creates the reservation row inside tx. A partial unique index on
// (table_id, date, slot) for active statuses is the final defence-in-depth
// layer: a unique violation here (despite the row lock and overlap check
// already having passed) is mapped to ReservationConflict rather than a
// raw database error.
func (r *ReservationRepository) Insert(tx *gorm.DB, reservation *models.Reservation) error {
	if err := tx.Create(reservation).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.New(apperrors.CodeReservationConflict, "table already booked for this slot")
		}
		return wrapDBError("failed to insert reservation", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}

// isSerializationFailure reports whether err is a Postgres SQLSTATE 40001
// serialization failure or 40P01 deadlock — the expected way SERIALIZABLE
// surfaces a read/write conflict between two concurrent reservation
// transactions. The loser must retry, so this maps to ReservationConflict
// (409, retryable) rather than a flat 500.
func isSerializationFailure(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "40001") ||
		strings.Contains(msg, "could not serialize access") ||
		strings.Contains(msg, "deadlock detected")
}

// isStatementTimeout reports whether err is a Postgres SQLSTATE 57014
// statement timeout or a context deadline hit while waiting on a row lock.
func isStatementTimeout(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "57014") ||
		strings.Contains(msg, "statement timeout") ||
		strings.Contains(msg, "lock timeout") ||
		strings.Contains(msg, "context deadline exceeded")
}

// wrapDBError classifies a raw database error into the reservation
// engine's error taxonomy: a serialization failure becomes a retryable
// ReservationConflict, a timeout becomes a retryable Timeout, and
// anything else falls back to the opaque CodeDatabase.
func wrapDBError(message string, err error) error {
	switch {
	case isSerializationFailure(err):
		return apperrors.Wrap(apperrors.CodeReservationConflict, message, err)
	case isStatementTimeout(err):
		return apperrors.Wrap(apperrors.CodeTimeout, message, err)
	default:
		return apperrors.Wrap(apperrors.CodeDatabase, message, err)
	}
}

// Fetch retrieves a reservation by its composite (id, date) key.
func (r *ReservationRepository) Fetch(ctx context.Context, id uint, date time.Time) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.db.WithContext(ctx).
		Where("id = ? AND date = ?", id, date).
		First(&reservation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "reservation not found")
		}
		return nil, apperrors.Wrap(apperrors.CodeDatabase, "failed to fetch reservation", err)
	}
	return &reservation, nil
}

// FetchForUpdate is Fetch but row-locked, for use inside a transaction
// that is about to transition the reservation's status.
func (r *ReservationRepository) FetchForUpdate(tx *gorm.DB, id uint, date time.Time) (*models.Reservation, error) {
	var reservation models.Reservation
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND date = ?", id, date).
		First(&reservation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "reservation not found")
		}
		return nil, wrapDBError("failed to lock reservation", err)
	}
	return &reservation, nil
}

// UpdateStatus transitions reservation (id, date) to newStatus inside tx,
// refusing the write if the current status cannot legally move there.
// The timestamp column matching newStatus (confirmed_at, checked_in_at,
// completed_at, cancelled_at) is stamped as part of the same update.
func (r *ReservationRepository) UpdateStatus(tx *gorm.DB, reservation *models.Reservation, newStatus models.ReservationStatus) error {
	if !models.CanTransitionTo(reservation.Status, newStatus) {
		return apperrors.Newf(apperrors.CodeInvalidTransition, "cannot transition reservation from %s to %s", reservation.Status, newStatus)
	}

	now := time.Now()
	updates := map[string]interface{}{"status": newStatus}
	switch newStatus {
	case models.ReservationStatusConfirmed:
		updates["confirmed_at"] = now
	case models.ReservationStatusCheckedIn:
		updates["checked_in_at"] = now
	case models.ReservationStatusCompleted:
		updates["completed_at"] = now
	case models.ReservationStatusCancelled, models.ReservationStatusNoShow:
		updates["cancelled_at"] = now
	}

	err := tx.Model(&models.Reservation{}).
		Where("id = ? AND date = ?", reservation.ID, reservation.Date).
		Updates(updates).Error
	if err != nil {
		return wrapDBError("failed to update reservation status", err)
	}
	reservation.Status = newStatus
	return nil
}

// ListByUser returns a user's reservations across every restaurant, most
// recent date first.
func (r *ReservationRepository) ListByUser(ctx context.Context, userID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, slot DESC").
		Find(&reservations).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDatabase, "failed to list reservations by user", err)
	}
	return reservations, nil
}

// ListByRestaurant returns a restaurant's reservations for a single date,
// ordered by slot.
func (r *ReservationRepository) ListByRestaurant(ctx context.Context, restaurantID uint, date time.Time) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND date = ?", restaurantID, date).
		Order("slot ASC").
		Find(&reservations).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDatabase, "failed to list reservations by restaurant", err)
	}
	return reservations, nil
}

// ListActiveByRestaurantDate is the raw slice AvailabilityQuery uses to
// materialize free/booked slots; it deliberately skips the User preload
// since availability computation only needs table_id/slot/duration.
func (r *ReservationRepository) ListActiveByRestaurantDate(ctx context.Context, restaurantID uint, date time.Time) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.WithContext(ctx).
		Select("id", "date", "restaurant_id", "table_id", "slot", "duration_minutes", "status").
		Where("restaurant_id = ? AND date = ? AND status IN ?", restaurantID, date, models.ActiveReservationStatuses).
		Find(&reservations).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDatabase, "failed to list active reservations", err)
	}
	return reservations, nil
}

// WithTransaction runs fn inside a new serializable transaction, matching
// the isolation level required by the reservation create critical
// section (row lock alone is not sufficient against phantom reads across
// concurrent table-selection queries). SSI can abort the transaction at
// COMMIT even when every statement inside fn succeeded, so a commit-time
// serialization failure is classified here rather than only at the
// statement that happened to trip it.
func (r *ReservationRepository) WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	err := r.db.WithContext(ctx).Transaction(fn, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err == nil {
		return nil
	}
	if _, ok := apperrors.As(err); ok {
		return err
	}
	return wrapDBError("reservation transaction failed", err)
}
