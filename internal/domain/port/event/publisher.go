package event

import (
	"context"
	"time"
)

// Booking lifecycle event types
const (
	TypeBookingCreated   = "booking_created"
	TypeBookingCancelled = "booking_cancelled"
)

// BookingEvent describes a booking lifecycle transition for downstream consumers
type BookingEvent struct {
	Type          string    `json:"type"`
	BookingID     string    `json:"booking_id"`
	UserID        string    `json:"user_id"`
	SlotID        string    `json:"slot_id"`
	VehicleNumber string    `json:"vehicle_number"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// Publisher emits booking lifecycle events. Publishing is best-effort from
// the allocator's point of view; failures are logged, never surfaced to the
// caller.
type Publisher interface {
	PublishBookingEvent(ctx context.Context, evt BookingEvent) error
	Close() error
}
