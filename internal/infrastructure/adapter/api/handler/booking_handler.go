package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/slot-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/slot-booking/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/slot-booking/internal/infrastructure/adapter/api/dto"
)

// BookingHandler handles booking HTTP requests
type BookingHandler struct {
	allocator usecase.BookingAllocator
	logger    coreport.Logger
}

// NewBookingHandler creates a new booking handler instance
func NewBookingHandler(
	allocator usecase.BookingAllocator,
	logger coreport.Logger,
) *BookingHandler {
	return &BookingHandler{
		allocator: allocator,
		logger:    logger,
	}
}

// Create handles the POST /bookings endpoint
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c)
		return
	}

	booking, err := h.allocator.CreateBooking(c.Request.Context(), usecase.CreateBookingInput{
		UserID:        userID,
		SlotID:        req.SlotID,
		VehicleNumber: req.VehicleNumber,
		VehicleType:   req.VehicleType,
	})
	if err != nil {
		h.logger.Warn("Booking creation failed", map[string]any{
			"userId": userID,
			"slotId": req.SlotID,
			"error":  err.Error(),
		})
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewBookingResponse(booking))
}

// Cancel handles the PUT /bookings/{bookingId}/cancel endpoint
func (h *BookingHandler) Cancel(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	bookingID := c.Param("bookingId")
	booking, err := h.allocator.CancelBooking(c.Request.Context(), bookingID, userID)
	if err != nil {
		h.logger.Warn("Booking cancellation failed", map[string]any{
			"bookingId": bookingID,
			"userId":    userID,
			"error":     err.Error(),
		})
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBookingResponse(booking))
}

// List handles the GET /bookings endpoint
func (h *BookingHandler) List(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	adminView := c.Query("admin_view") == "true"
	bookings, err := h.allocator.ListBookings(c.Request.Context(), userID, adminView)
	if err != nil {
		h.logger.Warn("Booking listing failed", map[string]any{
			"userId":    userID,
			"adminView": adminView,
			"error":     err.Error(),
		})
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBookingListResponse(bookings))
}
