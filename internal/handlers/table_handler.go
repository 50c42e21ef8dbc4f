package handlers

import (
	"net/http"
	"strconv"

	"restaurant-backend/internal/apperrors"
	"restaurant-backend/internal/middleware"
	"restaurant-backend/internal/models"
	"restaurant-backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// TableHandler exposes create, get and list for the physical tables a
// restaurant seats guests at; there is no update or delete endpoint. ReservationService and AvailabilityService consume
// TableRepository internally for selection; this handler is the surface
// restaurant staff use to provision and inspect their floor plan.
type TableHandler struct {
	tableRepo *repositories.TableRepository
}

// NewTableHandler creates a new TableHandler instance.
func NewTableHandler(tableRepo *repositories.TableRepository) *TableHandler {
	return &TableHandler{tableRepo: tableRepo}
}

// createTableRequest is the body for provisioning a new table.
type createTableRequest struct {
	Number      string `json:"number" binding:"required"`
	MinCapacity int    `json:"min_capacity" binding:"required"`
	MaxCapacity int    `json:"max_capacity" binding:"required"`
}

// CreateTable provisions a new physical table for the caller's restaurant.
// @Summary Create Table
// @Description Provision a new physical table for the restaurant
// @Tags tables
// @Accept json
// @Produce json
// @Param request body createTableRequest true "Table data"
// @Success 201 {object} models.Table
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/tables [post]
func (h *TableHandler) CreateTable(c *gin.Context) {
	var req createTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		envelope(c, 0, nil, apperrors.Newf(apperrors.CodeValidation, "invalid request body: %s", err.Error()))
		return
	}

	restaurantID, exists := c.Get(middleware.RestaurantIDKey)
	if !exists {
		envelope(c, 0, nil, apperrors.New(apperrors.CodeInternal, "restaurant_id not found in context"))
		return
	}

	if req.MaxCapacity < req.MinCapacity {
		envelope(c, 0, nil, apperrors.New(apperrors.CodeValidation, "max_capacity must be >= min_capacity").WithReason("invalid_capacity_range"))
		return
	}

	table := &models.Table{
		RestaurantID: restaurantID.(uint),
		Number:       req.Number,
		MinCapacity:  req.MinCapacity,
		MaxCapacity:  req.MaxCapacity,
		IsActive:     true,
		Status:       models.TableStatusAvailable,
	}

	if err := h.tableRepo.Create(c.Request.Context(), table); err != nil {
		envelope(c, 0, nil, err)
		return
	}

	envelope(c, http.StatusCreated, table, nil)
}

// GetTable returns a single table by ID.
// @Summary Get Table
// @Description Get a physical table by ID
// @Tags tables
// @Produce json
// @Param id path int true "Table ID"
// @Success 200 {object} models.Table
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/tables/{id} [get]
func (h *TableHandler) GetTable(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		envelope(c, 0, nil, apperrors.New(apperrors.CodeValidation, "invalid table id"))
		return
	}

	table, err := h.tableRepo.GetByID(c.Request.Context(), uint(id))
	envelope(c, http.StatusOK, table, err)
}

// ListTables returns every table belonging to the caller's restaurant.
// @Summary List Tables
// @Description List every physical table for the restaurant
// @Tags tables
// @Produce json
// @Success 200 {array} models.Table
// @Router /api/v1/tables [get]
func (h *TableHandler) ListTables(c *gin.Context) {
	restaurantID, exists := c.Get(middleware.RestaurantIDKey)
	if !exists {
		envelope(c, 0, nil, apperrors.New(apperrors.CodeInternal, "restaurant_id not found in context"))
		return
	}

	tables, err := h.tableRepo.ListByRestaurant(c.Request.Context(), restaurantID.(uint))
	envelope(c, http.StatusOK, tables, err)
}
