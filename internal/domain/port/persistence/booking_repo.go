package persistence

import (
	"context"

	"github.com/amirhossein-jamali/slot-booking/internal/domain/entity"
)

// BookingRepository defines the storage operations for bookings.
// The two paired-write operations (CreateConfirmed, CancelConfirmed) are the
// only writers of slot availability transitions; each runs as a single
// storage transaction so the booking record and the availability flag can
// never diverge.
type BookingRepository interface {
	// GetByID retrieves a booking by ID
	//
	// Possible errors:
	// - ErrBookingNotFound: If no booking with the given ID exists
	// - ErrStorage: If the storage collaborator fails
	GetByID(ctx context.Context, id string) (*entity.Booking, error)

	// ListByUser returns all bookings of a user, newest first
	ListByUser(ctx context.Context, userID string) ([]entity.Booking, error)

	// ListAll returns every booking, newest first. Admin reporting only.
	ListAll(ctx context.Context) ([]entity.Booking, error)

	// CountActiveByUser returns the number of confirmed bookings held by a user
	CountActiveByUser(ctx context.Context, userID string) (int64, error)

	// HasActiveForSlot reports whether any confirmed booking references the slot
	HasActiveForSlot(ctx context.Context, slotID string) (bool, error)

	// CreateConfirmed inserts the booking and flips the referenced slot's
	// availability true->false in one transaction. The conditional
	// availability write is the sole commit point: when two requests race on
	// the same slot, exactly one insert goes through. The per-user limit is
	// re-checked inside the transaction to hold under concurrency.
	//
	// Possible errors:
	// - ErrSlotUnavailable: If the slot's availability flag was already false
	// - ErrSlotNotFound: If the slot was deleted in the meantime
	// - ErrBookingLimitExceeded: If the user reached maxActivePerUser
	// - ErrStorage: If the storage collaborator fails
	CreateConfirmed(ctx context.Context, booking *entity.Booking, maxActivePerUser int) error

	// CancelConfirmed persists the cancelled state of the booking and flips
	// the referenced slot's availability back to true in one transaction.
	// The status update is conditional on the stored status still being
	// confirmed, which makes double-cancel races harmless.
	//
	// Possible errors:
	// - ErrInvalidState: If the stored booking is no longer confirmed
	// - ErrBookingNotFound: If the booking disappeared
	// - ErrStorage: If the storage collaborator fails
	CancelConfirmed(ctx context.Context, booking *entity.Booking) error
}
