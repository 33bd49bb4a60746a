package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/slot-booking/internal/domain/error"
	coreport "github.com/amirhossein-jamali/slot-booking/internal/domain/port/core"
	"github.com/google/uuid"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	// StatusConfirmed is an active, currently-held booking
	StatusConfirmed BookingStatus = "confirmed"
	// StatusCancelled is a booking released by the user or an admin
	StatusCancelled BookingStatus = "cancelled"
	// StatusCompleted is a finished charging session
	StatusCompleted BookingStatus = "completed"
)

// IsValidStatus checks if the given string is a valid booking status
func IsValidStatus(status string) bool {
	switch BookingStatus(status) {
	case StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// Booking represents a user's reservation of a slot for a vehicle.
// The (user, slot) pair is fixed at creation; only the status and the
// cancellation timestamp ever change afterwards.
type Booking struct {
	ID            string        // Unique identifier (UUID)
	UserID        string        // Owner of the booking
	SlotID        string        // Reserved slot
	VehicleNumber string        // Registration plate of the vehicle
	VehicleType   string        // Optional vehicle category
	Status        BookingStatus // confirmed, cancelled or completed
	CreatedAt     time.Time     // When the booking was made
	CancelledAt   *time.Time    // Set when the booking is cancelled
}

// NewBooking creates a confirmed booking with a generated ID
func NewBooking(userID, slotID, vehicleNumber, vehicleType string, timeProvider coreport.TimeProvider) (*Booking, error) {
	if userID == "" || slotID == "" {
		return nil, errs.ErrInvalidRequest
	}
	if strings.TrimSpace(vehicleNumber) == "" {
		return nil, errs.ErrInvalidRequest
	}

	return &Booking{
		ID:            uuid.NewString(),
		UserID:        userID,
		SlotID:        slotID,
		VehicleNumber: vehicleNumber,
		VehicleType:   vehicleType,
		Status:        StatusConfirmed,
		CreatedAt:     timeProvider.Now(),
	}, nil
}

// IsActive reports whether the booking currently holds its slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusConfirmed
}

// CancellableBy reports whether the acting user may cancel this booking.
// Owners cancel their own bookings; admins cancel any.
func (b *Booking) CancellableBy(actor *User) bool {
	if actor == nil {
		return false
	}
	return b.UserID == actor.ID || actor.IsAdmin()
}

// Cancel transitions the booking to cancelled and records the timestamp.
// Only confirmed bookings can be cancelled.
func (b *Booking) Cancel(timeProvider coreport.TimeProvider) error {
	if b.Status != StatusConfirmed {
		return errs.ErrInvalidState
	}
	now := timeProvider.Now()
	b.Status = StatusCancelled
	b.CancelledAt = &now
	return nil
}

// Complete transitions the booking to completed after the session ends
func (b *Booking) Complete() error {
	if b.Status != StatusConfirmed {
		return errs.ErrInvalidState
	}
	b.Status = StatusCompleted
	return nil
}
