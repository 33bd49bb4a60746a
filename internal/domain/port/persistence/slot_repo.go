package persistence

import (
	"context"

	"github.com/amirhossein-jamali/slot-booking/internal/domain/entity"
)

// SlotFilter narrows slot listings
type SlotFilter struct {
	AvailableOnly bool
}

// SlotRepository defines the storage operations for slot inventory.
// The availability flag is never written through this interface; the booking
// repository's paired writes are its only writers. Inventory operations only
// create and delete whole slots.
type SlotRepository interface {
	// GetByID retrieves a slot by ID
	//
	// Possible errors:
	// - ErrSlotNotFound: If no slot with the given ID exists
	// - ErrStorage: If the storage collaborator fails
	GetByID(ctx context.Context, id string) (*entity.Slot, error)

	// List returns slots matching the filter, ordered by location then number
	List(ctx context.Context, filter SlotFilter) ([]entity.Slot, error)

	// Create persists a new slot
	//
	// Possible errors:
	// - ErrDuplicateSlot: If a slot with the same (location, number) exists
	// - ErrStorage: If the storage collaborator fails
	Create(ctx context.Context, slot *entity.Slot) error

	// Delete removes a slot record. Deletion safety (no confirmed booking)
	// is checked by the inventory use case before calling this.
	//
	// Possible errors:
	// - ErrSlotNotFound: If no slot with the given ID exists
	// - ErrStorage: If the storage collaborator fails
	Delete(ctx context.Context, id string) error
}
