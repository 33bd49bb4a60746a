package usecase

import (
	"context"

	"github.com/amirhossein-jamali/slot-booking/internal/domain/entity"
)

// SlotInventory creates and deletes slot definitions. It never touches the
// availability flag; that belongs to the booking allocator.
type SlotInventory interface {
	// CreateSlot adds a new slot.
	//
	// - ErrDuplicateSlot: a slot with the same (location, number) exists
	CreateSlot(ctx context.Context, location string, slotNumber int) (*entity.Slot, error)

	// DeleteSlot removes a slot.
	//
	// - ErrSlotNotFound: slot missing
	// - ErrSlotInUse: a confirmed booking still references the slot
	DeleteSlot(ctx context.Context, slotID string) error

	// ListSlots returns all slots, or only the available ones
	ListSlots(ctx context.Context, availableOnly bool) ([]entity.Slot, error)
}
