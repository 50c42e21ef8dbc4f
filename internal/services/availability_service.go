package services

import (
	"context"
	"time"

	"restaurant-backend/internal/cache"
	"restaurant-backend/internal/metrics"
	"restaurant-backend/internal/models"
	"restaurant-backend/internal/repositories"
)

// SlotAvailability is one row of an availability query response: a slot
// (minutes since midnight) plus the tables still open at that slot.
type SlotAvailability struct {
	Slot            int           `json:"slot"`
	AvailableTables []models.Table `json:"available_tables"`
}

// AvailabilityService computes per-slot, per-party-size availability for
// a restaurant date, reading through the short-TTL cache described in
// §4.3 before falling back to the database.
type AvailabilityService struct {
	restaurantRepo *repositories.RestaurantRepository
	tableRepo      *repositories.TableRepository
	reservationRepo *repositories.ReservationRepository
	cacheStore     *cache.Store
}

// NewAvailabilityService creates a new AvailabilityService instance.
func NewAvailabilityService(
	restaurantRepo *repositories.RestaurantRepository,
	tableRepo *repositories.TableRepository,
	reservationRepo *repositories.ReservationRepository,
	cacheStore *cache.Store,
) *AvailabilityService {
	return &AvailabilityService{
		restaurantRepo:  restaurantRepo,
		tableRepo:       tableRepo,
		reservationRepo: reservationRepo,
		cacheStore:      cacheStore,
	}
}

// Query returns the availability snapshot for (restaurantID, date, partySize).
func (s *AvailabilityService) Query(ctx context.Context, restaurantID uint, date time.Time, partySize int) ([]SlotAvailability, error) {
	key := cache.Key(restaurantID, date.Format("2006-01-02")) + ":" + partySizeKey(partySize)

	var cached []SlotAvailability
	if s.cacheStore.Get(ctx, key, &cached) {
		metrics.RecordCacheHit(uintToA(restaurantID))
		return cached, nil
	}
	metrics.RecordCacheMiss(uintToA(restaurantID))

	restaurant, err := s.restaurantRepo.FetchRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	businessHours, err := models.ParseBusinessHours(restaurant.BusinessHours)
	if err != nil {
		return nil, err
	}
	intervals := businessHours.IntervalsFor(int(date.Weekday()))

	slotDuration := restaurant.SlotDurationMinutes
	if slotDuration <= 0 {
		slotDuration = 30
	}
	reservationDuration := restaurant.DefaultReservationDurationMinutes
	if reservationDuration <= 0 {
		reservationDuration = 120
	}

	candidates, err := s.tableRepo.ListEligible(ctx, restaurantID, partySize)
	if err != nil {
		return nil, err
	}
	existing, err := s.reservationRepo.ListActiveByRestaurantDate(ctx, restaurantID, date)
	if err != nil {
		return nil, err
	}

	var result []SlotAvailability
	for _, iv := range intervals {
		for slot := iv.OpenMinute; slot < iv.CloseMinute; slot += slotDuration {
			available := filterAvailable(candidates, existing, slot, reservationDuration)
			if len(available) > 0 {
				result = append(result, SlotAvailability{Slot: slot, AvailableTables: available})
			}
		}
	}

	s.cacheStore.Set(ctx, key, result)
	return result, nil
}

func partySizeKey(partySize int) string {
	return uintToA(uint(partySize))
}
