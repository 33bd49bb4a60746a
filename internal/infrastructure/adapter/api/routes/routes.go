package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/slot-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/slot-booking/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/slot-booking/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	slotHandler *handler.SlotHandler,
	bookingHandler *handler.BookingHandler,
	dashboardHandler *handler.DashboardHandler,
) {
	// Account routes
	router.POST("/register", authHandler.Register)
	router.POST("/login", authHandler.Login)

	// Slot routes
	slotRoutes := router.Group("/slots")
	{
		// GET /slots?available_only=true
		slotRoutes.GET("", slotHandler.List)

		// POST /slots (admin)
		slotRoutes.POST("", slotHandler.Create)

		// DELETE /slots/:slotId (admin)
		slotRoutes.DELETE("/:slotId", slotHandler.Delete)
	}

	// Booking routes
	bookingRoutes := router.Group("/bookings")
	{
		// GET /bookings?admin_view=true
		bookingRoutes.GET("", bookingHandler.List)

		// POST /bookings
		bookingRoutes.POST("", bookingHandler.Create)

		// PUT /bookings/:bookingId/cancel
		bookingRoutes.PUT("/:bookingId/cancel", bookingHandler.Cancel)
	}

	// Dashboard routes
	dashboardRoutes := router.Group("/dashboard")
	{
		// GET /dashboard/user/:userId
		dashboardRoutes.GET("/user/:userId", dashboardHandler.User)

		// GET /dashboard/admin (admin)
		dashboardRoutes.GET("/admin", dashboardHandler.Admin)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(
	router *gin.Engine,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	rateLimitRPS float64,
	rateLimitBurst int,
) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS())
	router.Use(middleware.RateLimit(rateLimitRPS, rateLimitBurst))
	router.Use(middleware.Identity())
}
