package handlers

import (
	"net/http"
	"strconv"
	"time"

	"restaurant-backend/internal/apperrors"
	"restaurant-backend/internal/middleware"
	"restaurant-backend/internal/models"
	"restaurant-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// ReservationHandler handles reservation-related requests for the
// reservation engine's HTTP surface.
type ReservationHandler struct {
	reservationService  *services.ReservationService
	availabilityService *services.AvailabilityService
}

// NewReservationHandler creates a new ReservationHandler instance
func NewReservationHandler(
	reservationService *services.ReservationService,
	availabilityService *services.AvailabilityService,
) *ReservationHandler {
	return &ReservationHandler{
		reservationService:  reservationService,
		availabilityService: availabilityService,
	}
}

// apiError is the error branch of the response envelope.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// envelope wraps every reservation-engine response in the uniform
// {success, data?, error?, timestamp} shape.
func envelope(c *gin.Context, status int, data any, err error) {
	if err != nil {
		ae, ok := apperrors.As(err)
		if !ok {
			ae = apperrors.New(apperrors.CodeInternal, err.Error())
		}
		c.JSON(ae.Code.HTTPStatus(), gin.H{
			"success":   false,
			"error":     apiError{Code: string(ae.Code), Message: ae.Message},
			"timestamp": time.Now().UTC(),
		})
		return
	}
	c.JSON(status, gin.H{
		"success":   true,
		"data":      data,
		"timestamp": time.Now().UTC(),
	})
}

// CreateReservation handles reservation creation.
// @Summary Create Reservation
// @Description Create a new table reservation, enforcing zero double-booking under concurrency
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body services.CreateReservationRequest true "Reservation data"
// @Success 201 {object} models.Reservation
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/v1/reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req services.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		envelope(c, 0, nil, apperrors.Newf(apperrors.CodeValidation, "invalid request body: %s", err.Error()))
		return
	}

	if restaurantID, exists := c.Get(middleware.RestaurantIDKey); exists {
		req.RestaurantID = restaurantID.(uint)
	}

	reservation, err := h.reservationService.Create(c.Request.Context(), &req)
	envelope(c, http.StatusCreated, reservation, err)
}

// GetAvailability computes per-slot availability for a restaurant/date/party size.
// @Summary Get Availability
// @Description List open slots and eligible tables for a restaurant on a date
// @Tags reservations
// @Produce json
// @Param restaurantId query int true "Restaurant ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param partySize query int true "Party size"
// @Success 200 {array} services.SlotAvailability
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/reservations/availability [get]
func (h *ReservationHandler) GetAvailability(c *gin.Context) {
	restaurantID, err := strconv.ParseUint(c.Query("restaurantId"), 10, 32)
	if err != nil {
		envelope(c, 0, nil, apperrors.ErrMissingField("restaurantId"))
		return
	}
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		envelope(c, 0, nil, apperrors.ErrInvalidDate)
		return
	}
	partySize, err := strconv.Atoi(c.Query("partySize"))
	if err != nil || partySize < 1 {
		envelope(c, 0, nil, apperrors.ErrInvalidPartySize)
		return
	}

	slots, err := h.availabilityService.Query(c.Request.Context(), uint(restaurantID), date, partySize)
	envelope(c, http.StatusOK, slots, err)
}

// GetReservation handles getting a reservation by its composite (id, date) key.
// @Summary Get Reservation
// @Description Get a reservation by ID and date
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} models.Reservation
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, date, err := parseIDAndDate(c)
	if err != nil {
		envelope(c, 0, nil, err)
		return
	}

	reservation, err := h.reservationService.Get(c.Request.Context(), id, date)
	envelope(c, http.StatusOK, reservation, err)
}

// ConfirmReservation transitions a reservation from pending to confirmed.
// @Summary Confirm Reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} models.Reservation
// @Failure 409 {object} map[string]interface{}
// @Router /api/v1/reservations/{id}/confirm [post]
func (h *ReservationHandler) ConfirmReservation(c *gin.Context) {
	h.transition(c, func(id uint, date time.Time, actorUserID uint) (*models.Reservation, error) {
		return h.reservationService.Confirm(c.Request.Context(), id, date, actorUserID)
	})
}

// CancelReservation transitions a reservation to cancelled.
// @Summary Cancel Reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} models.Reservation
// @Failure 409 {object} map[string]interface{}
// @Router /api/v1/reservations/{id}/cancel [post]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	h.transition(c, func(id uint, date time.Time, actorUserID uint) (*models.Reservation, error) {
		return h.reservationService.Cancel(c.Request.Context(), id, date, actorUserID)
	})
}

type transitionBody struct {
	Date string `json:"date" binding:"required"`
}

func (h *ReservationHandler) transition(c *gin.Context, fn func(id uint, date time.Time, actorUserID uint) (*models.Reservation, error)) {
	idVal, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		envelope(c, 0, nil, apperrors.New(apperrors.CodeValidation, "invalid reservation id"))
		return
	}

	var body transitionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		envelope(c, 0, nil, apperrors.ErrMissingField("date"))
		return
	}
	date, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		envelope(c, 0, nil, apperrors.ErrInvalidDate)
		return
	}

	var actorUserID uint
	if uid, exists := c.Get(middleware.UserIDKey); exists {
		actorUserID = uid.(uint)
	}

	reservation, err := fn(uint(idVal), date, actorUserID)
	envelope(c, http.StatusOK, reservation, err)
}

// ListByUser returns a user's reservation history.
// @Summary List User Reservations
// @Tags reservations
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} models.Reservation
// @Router /api/v1/reservations/user/{userId} [get]
func (h *ReservationHandler) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		envelope(c, 0, nil, apperrors.New(apperrors.CodeValidation, "invalid user id"))
		return
	}

	reservations, err := h.reservationService.ListByUser(c.Request.Context(), uint(userID))
	envelope(c, http.StatusOK, reservations, err)
}

// ListByRestaurant returns a restaurant's reservations for a date.
// @Summary List Restaurant Reservations
// @Tags reservations
// @Produce json
// @Param restId path int true "Restaurant ID"
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {array} models.Reservation
// @Router /api/v1/reservations/restaurant/{restId} [get]
func (h *ReservationHandler) ListByRestaurant(c *gin.Context) {
	restaurantID, err := strconv.ParseUint(c.Param("restId"), 10, 32)
	if err != nil {
		envelope(c, 0, nil, apperrors.New(apperrors.CodeValidation, "invalid restaurant id"))
		return
	}

	dateParam := c.Query("date")
	var date time.Time
	if dateParam == "" {
		date = time.Now()
	} else {
		date, err = time.Parse("2006-01-02", dateParam)
		if err != nil {
			envelope(c, 0, nil, apperrors.ErrInvalidDate)
			return
		}
	}

	reservations, err := h.reservationService.ListByRestaurant(c.Request.Context(), uint(restaurantID), date)
	envelope(c, http.StatusOK, reservations, err)
}

func parseIDAndDate(c *gin.Context) (uint, time.Time, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, time.Time{}, apperrors.New(apperrors.CodeValidation, "invalid reservation id")
	}
	dateParam := c.Query("date")
	if dateParam == "" {
		return 0, time.Time{}, apperrors.ErrMissingField("date")
	}
	date, err := time.Parse("2006-01-02", dateParam)
	if err != nil {
		return 0, time.Time{}, apperrors.ErrInvalidDate
	}
	return uint(id), date, nil
}
