package services

import (
	"context"
	"encoding/json"
	"time"

	"restaurant-backend/internal/apperrors"
	"restaurant-backend/internal/cache"
	"restaurant-backend/internal/lock"
	"restaurant-backend/internal/logger"
	"restaurant-backend/internal/metrics"
	"restaurant-backend/internal/models"
	"restaurant-backend/internal/repositories"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// userConflictWindowMinutes is the ±2 hour window used by invariant 4
// (§3): a user cannot hold two active reservations at the same
// restaurant whose slots fall within this window of each other.
const userConflictWindowMinutes = 120

// ReservationService is the orchestrator described by the reservation
// engine's concurrency core: validate, select a table, acquire the
// distributed lock, run the serializable transaction, invalidate the
// cache, release the lock.
type ReservationService struct {
	reservationRepo *repositories.ReservationRepository
	tableRepo       *repositories.TableRepository
	restaurantRepo  *repositories.RestaurantRepository
	logRepo         *repositories.ReservationLogRepository
	lockSvc         *lock.Service
	cacheStore      *cache.Store

	lockTTL        time.Duration
	lockAttempts   int
	lockBackoff    time.Duration
}

// NewReservationService creates a new ReservationService instance.
func NewReservationService(
	reservationRepo *repositories.ReservationRepository,
	tableRepo *repositories.TableRepository,
	restaurantRepo *repositories.RestaurantRepository,
	logRepo *repositories.ReservationLogRepository,
	lockSvc *lock.Service,
	cacheStore *cache.Store,
	lockTTL time.Duration,
	lockAttempts int,
	lockBackoff time.Duration,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
		restaurantRepo:  restaurantRepo,
		logRepo:         logRepo,
		lockSvc:         lockSvc,
		cacheStore:      cacheStore,
		lockTTL:         lockTTL,
		lockAttempts:    lockAttempts,
		lockBackoff:     lockBackoff,
	}
}

// CreateReservationRequest is the reservation-engine create payload,
// channel-agnostic: every ingress surface (web, WhatsApp, Instagram,
// email, phone) normalizes into this shape before calling Create.
type CreateReservationRequest struct {
	RestaurantID    uint                      `json:"restaurant_id" binding:"required"`
	UserID          uint                      `json:"user_id" binding:"required"`
	Date            string                    `json:"date" binding:"required"` // YYYY-MM-DD
	Slot            string                    `json:"slot" binding:"required"` // HH:MM
	PartySize       int                       `json:"party_size" binding:"required,min=1"`
	GuestName       string                    `json:"guest_name" binding:"required"`
	GuestPhone      *string                   `json:"guest_phone,omitempty"`
	GuestEmail      *string                   `json:"guest_email,omitempty"`
	SpecialRequests string                    `json:"special_requests"`
	Channel         models.ReservationChannel `json:"channel"`
	Metadata        map[string]interface{}    `json:"metadata,omitempty"`
}

// Create runs the full reservation-create algorithm: validate, select a
// table, lock, transact, invalidate, release.
func (s *ReservationService) Create(ctx context.Context, req *CreateReservationRequest) (*models.Reservation, error) {
	restaurant, date, slotMinutes, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	duration := restaurant.DefaultReservationDurationMinutes
	if duration <= 0 {
		duration = 120
	}

	candidates, err := s.tableRepo.ListEligible(ctx, req.RestaurantID, req.PartySize)
	if err != nil {
		return nil, err
	}
	existing, err := s.reservationRepo.ListActiveByRestaurantDate(ctx, req.RestaurantID, date)
	if err != nil {
		return nil, err
	}
	eligible := filterAvailable(candidates, existing, slotMinutes, duration)
	if len(eligible) == 0 {
		metrics.RecordReservationConflict(uintToA(req.RestaurantID), "no_availability")
		return nil, apperrors.New(apperrors.CodeNoAvailability, "no table is available for the requested slot")
	}
	selectedTable := eligible[0]

	lockKey := lock.Key(selectedTable.ID, req.Date, slotMinutes)
	ownerToken := lock.NewOwnerToken()

	lockStart := time.Now()
	acquired, err := s.lockSvc.AcquireWithRetry(ctx, lockKey, ownerToken, s.lockTTL, s.lockAttempts, s.lockBackoff)
	metrics.RecordLockAcquire(acquired, time.Since(lockStart).Seconds())
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeLockUnavailable, "lock service unavailable", err)
	}
	if !acquired {
		return nil, apperrors.New(apperrors.CodeLockUnavailable, "could not acquire reservation lock")
	}
	defer s.lockSvc.ReleaseBestEffort(ctx, lockKey, ownerToken)

	var reservation *models.Reservation
	txErr := s.reservationRepo.WithTransaction(ctx, func(tx *gorm.DB) error {
		table, err := s.reservationRepo.LockTable(tx, selectedTable.ID)
		if err != nil {
			return err
		}
		if !table.IsEligible() {
			return apperrors.New(apperrors.CodeNoAvailability, "table is no longer available")
		}

		overlapping, err := s.reservationRepo.CountOverlapping(tx, table.ID, date, slotMinutes, duration)
		if err != nil {
			return err
		}
		if overlapping > 0 {
			metrics.RecordReservationConflict(uintToA(req.RestaurantID), "overlap")
			return apperrors.New(apperrors.CodeNoAvailability, "table is no longer available for this slot")
		}

		conflict, err := s.reservationRepo.CheckUserConflict(tx, req.RestaurantID, req.UserID, date, slotMinutes, userConflictWindowMinutes)
		if err != nil {
			return err
		}
		if conflict {
			metrics.RecordReservationConflict(uintToA(req.RestaurantID), "user_conflict")
			return apperrors.New(apperrors.CodeUserConflict, "you already have a reservation near this time")
		}

		if !table.FitsPartySize(req.PartySize) {
			return apperrors.New(apperrors.CodeCapacityExceeded, "party size does not fit the selected table")
		}

		reservation = &models.Reservation{
			Date:            date,
			RestaurantID:    req.RestaurantID,
			UserID:          req.UserID,
			TableID:         table.ID,
			Slot:            slotMinutes,
			DurationMinutes: duration,
			PartySize:       req.PartySize,
			GuestName:       req.GuestName,
			GuestPhone:      req.GuestPhone,
			GuestEmail:      req.GuestEmail,
			SpecialRequests: req.SpecialRequests,
			Status:          models.ReservationStatusPending,
			Channel:         defaultChannel(req.Channel),
			Metadata:        marshalMetadata(req.Metadata),
		}
		if err := s.reservationRepo.Insert(tx, reservation); err != nil {
			metrics.RecordReservationConflict(uintToA(req.RestaurantID), "unique_violation")
			return err
		}

		if err := s.logRepo.Append(tx, &models.ReservationLog{
			ReservationID:   reservation.ID,
			ReservationDate: reservation.Date,
			Action:          models.LogActionCreated,
			ActorUserID:     &req.UserID,
			Detail:          "reservation created",
		}); err != nil {
			return err
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.cacheStore.Invalidate(ctx, cache.Key(req.RestaurantID, req.Date)+":*")
	metrics.IncrementReservationsCreated(uintToA(req.RestaurantID), string(reservation.Status))

	return reservation, nil
}

// Confirm transitions a reservation from pending to confirmed.
func (s *ReservationService) Confirm(ctx context.Context, id uint, date time.Time, actorUserID uint) (*models.Reservation, error) {
	return s.transition(ctx, id, date, models.ReservationStatusConfirmed, models.LogActionConfirmed, actorUserID)
}

// Cancel transitions a reservation to cancelled from any non-terminal status.
func (s *ReservationService) Cancel(ctx context.Context, id uint, date time.Time, actorUserID uint) (*models.Reservation, error) {
	return s.transition(ctx, id, date, models.ReservationStatusCancelled, models.LogActionCancelled, actorUserID)
}

// MarkNoShow transitions a reservation to no_show with no acting user
// recorded. No code in this module calls it.
func (s *ReservationService) MarkNoShow(ctx context.Context, id uint, date time.Time) (*models.Reservation, error) {
	return s.transition(ctx, id, date, models.ReservationStatusNoShow, models.LogActionNoShow, 0)
}

// CheckIn transitions a reservation to checked_in on arrival at the venue.
func (s *ReservationService) CheckIn(ctx context.Context, id uint, date time.Time, actorUserID uint) (*models.Reservation, error) {
	return s.transition(ctx, id, date, models.ReservationStatusCheckedIn, models.LogActionCheckedIn, actorUserID)
}

// Complete transitions a reservation to completed after the visit.
func (s *ReservationService) Complete(ctx context.Context, id uint, date time.Time, actorUserID uint) (*models.Reservation, error) {
	return s.transition(ctx, id, date, models.ReservationStatusCompleted, models.LogActionCompleted, actorUserID)
}

func (s *ReservationService) transition(ctx context.Context, id uint, date time.Time, newStatus models.ReservationStatus, action models.ReservationLogAction, actorUserID uint) (*models.Reservation, error) {
	var reservation *models.Reservation
	err := s.reservationRepo.WithTransaction(ctx, func(tx *gorm.DB) error {
		current, err := s.reservationRepo.FetchForUpdate(tx, id, date)
		if err != nil {
			return err
		}
		if err := s.reservationRepo.UpdateStatus(tx, current, newStatus); err != nil {
			return err
		}

		var actor *uint
		if actorUserID != 0 {
			actor = &actorUserID
		}
		if err := s.logRepo.Append(tx, &models.ReservationLog{
			ReservationID:   current.ID,
			ReservationDate: current.Date,
			Action:          action,
			ActorUserID:     actor,
			Detail:          "status changed to " + string(newStatus),
		}); err != nil {
			return err
		}

		reservation = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cacheStore.Invalidate(ctx, cache.Key(reservation.RestaurantID, reservation.Date.Format("2006-01-02"))+":*")
	return reservation, nil
}

// Get fetches a single reservation by its composite key.
func (s *ReservationService) Get(ctx context.Context, id uint, date time.Time) (*models.Reservation, error) {
	return s.reservationRepo.Fetch(ctx, id, date)
}

// ListByUser fetches a user's reservation history.
func (s *ReservationService) ListByUser(ctx context.Context, userID uint) ([]models.Reservation, error) {
	return s.reservationRepo.ListByUser(ctx, userID)
}

// ListByRestaurant fetches a restaurant's reservations for a date.
func (s *ReservationService) ListByRestaurant(ctx context.Context, restaurantID uint, date time.Time) ([]models.Reservation, error) {
	return s.reservationRepo.ListByRestaurant(ctx, restaurantID, date)
}

// validate implements step 1 of 4.4.1: every pre-lock check, none of
// which requires a transaction.
func (s *ReservationService) validate(ctx context.Context, req *CreateReservationRequest) (*models.Restaurant, time.Time, int, error) {
	if req.GuestName == "" {
		return nil, time.Time{}, 0, apperrors.ErrMissingField("guest_name")
	}
	if req.PartySize < 1 {
		return nil, time.Time{}, 0, apperrors.ErrInvalidPartySize
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, time.Time{}, 0, apperrors.ErrInvalidDate
	}

	slotMinutes, err := parseSlot(req.Slot)
	if err != nil {
		return nil, time.Time{}, 0, apperrors.ErrInvalidSlot
	}

	restaurant, err := s.restaurantRepo.FetchRestaurant(ctx, req.RestaurantID)
	if err != nil {
		return nil, time.Time{}, 0, err
	}

	loc, err := time.LoadLocation(restaurant.Timezone)
	if err != nil {
		loc = time.UTC
	}

	slotTime := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc).Add(time.Duration(slotMinutes) * time.Minute)
	now := time.Now().In(loc)
	if !slotTime.After(now) {
		return nil, time.Time{}, 0, apperrors.ErrPastSlot
	}

	minAdvance := time.Duration(restaurant.MinAdvanceHours) * time.Hour
	if slotTime.Sub(now) < minAdvance {
		return nil, time.Time{}, 0, apperrors.ErrOutsideAdvanceMin
	}
	maxAdvance := time.Duration(restaurant.MaxAdvanceDays) * 24 * time.Hour
	if slotTime.Sub(now) > maxAdvance {
		return nil, time.Time{}, 0, apperrors.ErrOutsideAdvanceMax
	}

	businessHours, err := models.ParseBusinessHours(restaurant.BusinessHours)
	if err != nil {
		logger.Warn("failed to parse business hours", zap.Uint("restaurant_id", restaurant.ID), zap.Error(err))
		return nil, time.Time{}, 0, apperrors.ErrOutsideBusinessHours
	}
	intervals := businessHours.IntervalsFor(int(date.Weekday()))
	inHours := false
	for _, iv := range intervals {
		if iv.Contains(slotMinutes) {
			inHours = true
			break
		}
	}
	if !inHours {
		return nil, time.Time{}, 0, apperrors.ErrOutsideBusinessHours
	}

	return restaurant, date, slotMinutes, nil
}

func parseSlot(slot string) (int, error) {
	t, err := time.Parse("15:04", slot)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func defaultChannel(c models.ReservationChannel) models.ReservationChannel {
	if c == "" {
		return models.ChannelWeb
	}
	return c
}

// filterAvailable narrows the advisory candidate list to tables with no
// currently-active overlapping reservation. This is the read-only,
// non-locking pre-check (step 2 of 4.4.1); step 4's row-locked recheck is
// authoritative.
func filterAvailable(candidates []models.Table, existing []models.Reservation, slot, duration int) []models.Table {
	eligible := make([]models.Table, 0, len(candidates))
	for _, t := range candidates {
		overlaps := false
		for _, r := range existing {
			if r.TableID == t.ID && r.OverlapsSlot(slot, duration) {
				overlaps = true
				break
			}
		}
		if !overlaps {
			eligible = append(eligible, t)
		}
	}
	return eligible
}

func marshalMetadata(m map[string]interface{}) datatypes.JSON {
	if len(m) == 0 {
		return nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

func uintToA(v uint) string {
	if v == 0 {
		return "0"
	}
	digits := make([]byte, 0, 10)
	for v > 0 {
		digits = append([]byte{byte('0' + v%10)}, digits...)
		v /= 10
	}
	return string(digits)
}
