package usecase

import (
	"context"

	"github.com/amirhossein-jamali/slot-booking/internal/domain/entity"
)

// CreateBookingInput carries everything needed to reserve a slot
type CreateBookingInput struct {
	UserID        string
	SlotID        string
	VehicleNumber string
	VehicleType   string
}

// BookingAllocator validates and executes slot reservation and cancellation.
// It is the only writer of slot-availability transitions.
type BookingAllocator interface {
	// CreateBooking reserves a slot for a user.
	//
	// Precondition order, first failure wins:
	// - ErrUserInvalid: acting user missing or inactive
	// - ErrSlotNotFound: slot missing
	// - ErrSlotUnavailable: slot already booked
	// - ErrBookingLimitExceeded: user already holds the maximum confirmed bookings
	CreateBooking(ctx context.Context, input CreateBookingInput) (*entity.Booking, error)

	// CancelBooking releases a booking's slot.
	//
	// - ErrBookingNotFound: booking missing
	// - ErrForbidden: acting user is neither the owner nor an admin
	// - ErrInvalidState: booking is not confirmed
	CancelBooking(ctx context.Context, bookingID, actingUserID string) (*entity.Booking, error)

	// ListBookings returns the acting user's bookings, or every booking when
	// adminView is set and the acting user is an admin.
	//
	// - ErrForbidden: adminView requested by a non-admin
	ListBookings(ctx context.Context, actingUserID string, adminView bool) ([]entity.Booking, error)
}
