package dto

import (
	"time"

	"github.com/amirhossein-jamali/slot-booking/internal/domain/entity"
)

// CreateBookingRequest represents the body of POST /bookings
type CreateBookingRequest struct {
	SlotID        string `json:"slot_id" binding:"required"`
	VehicleNumber string `json:"vehicle_number" binding:"required"`
	VehicleType   string `json:"vehicle_type"`
}

// BookingResponse represents a booking in API responses
type BookingResponse struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	SlotID        string     `json:"slot_id"`
	VehicleNumber string     `json:"vehicle_number"`
	VehicleType   string     `json:"vehicle_type,omitempty"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
}

// NewBookingResponse converts a booking entity into its API representation
func NewBookingResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		UserID:        b.UserID,
		SlotID:        b.SlotID,
		VehicleNumber: b.VehicleNumber,
		VehicleType:   b.VehicleType,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
		CancelledAt:   b.CancelledAt,
	}
}

// NewBookingListResponse converts a booking listing
func NewBookingListResponse(bookings []entity.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, NewBookingResponse(&bookings[i]))
	}
	return out
}
