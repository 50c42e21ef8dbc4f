package router

import (
	"time"

	"restaurant-backend/internal/cache"
	"restaurant-backend/internal/config"
	"restaurant-backend/internal/handlers"
	"restaurant-backend/internal/lock"
	"restaurant-backend/internal/repositories"
	"restaurant-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// setupBusinessRoutes configures business-related routes (categories, menu items, orders, reservations)
func setupBusinessRoutes(protected *gin.RouterGroup, db *gorm.DB, cfg *config.Config, rdb *redis.Client) {
	// Initialize repositories
	categoryRepo := repositories.NewCategoryRepository(db)
	menuItemRepo := repositories.NewMenuItemRepository(db)
	reservationRepo := repositories.NewReservationRepository(db)
	tableRepo := repositories.NewTableRepository(db)
	restaurantRepo := repositories.NewRestaurantRepository(db)
	reservationLogRepo := repositories.NewReservationLogRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	orderItemRepo := repositories.NewOrderItemRepository(db)

	// Initialize the reservation engine's lock/cache clients.
	lockSvc := lock.NewService(rdb)
	cacheStore := cache.NewStore(rdb, time.Duration(cfg.AvailabilityCacheTTLSeconds)*time.Second)

	// Initialize services
	reservationService := services.NewReservationService(
		reservationRepo,
		tableRepo,
		restaurantRepo,
		reservationLogRepo,
		lockSvc,
		cacheStore,
		time.Duration(cfg.ReservationLockTTLSeconds)*time.Second,
		cfg.ReservationLockAttempts,
		time.Duration(cfg.ReservationLockBackoffMillis)*time.Millisecond,
	)
	availabilityService := services.NewAvailabilityService(restaurantRepo, tableRepo, reservationRepo, cacheStore)
	orderService := services.NewOrderService(orderRepo, orderItemRepo, menuItemRepo)

	// Initialize handlers
	categoryHandler := handlers.NewCategoryHandler(categoryRepo)
	menuItemHandler := handlers.NewMenuItemHandler(menuItemRepo)
	reservationHandler := handlers.NewReservationHandler(reservationService, availabilityService)
	tableHandler := handlers.NewTableHandler(tableRepo)
	orderHandler := handlers.NewOrderHandler(orderService, orderRepo)

	// Menu Category routes (for managing categories; no role check beyond authentication)
	categories := protected.Group("/categories")
	{
		categories.POST("", categoryHandler.CreateCategory)
		categories.GET("", categoryHandler.ListCategories)
		categories.GET("/:id", categoryHandler.GetCategory)
		categories.PUT("/:id", categoryHandler.UpdateCategory)
		categories.DELETE("/:id", categoryHandler.DeleteCategory)
	}

	// Menu Item routes (for managing items; no role check beyond authentication)
	menuItems := protected.Group("/menu-items")
	{
		menuItems.POST("", menuItemHandler.CreateMenuItem)
		menuItems.GET("", menuItemHandler.ListMenuItems)
		menuItems.GET("/:id", menuItemHandler.GetMenuItem)
		menuItems.PUT("/:id", menuItemHandler.UpdateMenuItem)
		menuItems.DELETE("/:id", menuItemHandler.DeleteMenuItem)
	}

	// Menu Item Image routes (for managing item images; no role check beyond authentication)
	// Using separate prefix to avoid routing conflicts with /menu-items/:id
	imageRepo := repositories.NewMenuItemImageRepository(db)
	imageHandler := handlers.NewMenuItemImageHandler(imageRepo)
	menuItemImages := protected.Group("/menu-item-images")
	{
		menuItemImages.POST("/:item_id", imageHandler.CreateMenuItemImage)
		menuItemImages.GET("/:item_id", imageHandler.ListMenuItemImages)
		menuItemImages.DELETE("/:item_id/:image_id", imageHandler.DeleteMenuItemImage)
		menuItemImages.PUT("/:item_id/:image_id/primary", imageHandler.SetPrimaryImage)
	}

	// Reservation routes
	reservations := protected.Group("/reservations")
	{
		reservations.POST("", reservationHandler.CreateReservation)
		reservations.GET("/availability", reservationHandler.GetAvailability)
		reservations.GET("/:id", reservationHandler.GetReservation)
		reservations.POST("/:id/confirm", reservationHandler.ConfirmReservation)
		reservations.POST("/:id/cancel", reservationHandler.CancelReservation)
		reservations.GET("/user/:userId", reservationHandler.ListByUser)
		reservations.GET("/restaurant/:restId", reservationHandler.ListByRestaurant)
	}

	// Table routes (for provisioning the floor plan; no role check beyond authentication)
	tables := protected.Group("/tables")
	{
		tables.POST("", tableHandler.CreateTable)
		tables.GET("", tableHandler.ListTables)
		tables.GET("/:id", tableHandler.GetTable)
	}

	// Order routes
	orders := protected.Group("/orders")
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PUT("/:id/status", orderHandler.UpdateOrderStatus)
	}
}
