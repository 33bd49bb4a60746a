package cache

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/slot-booking/internal/domain/entity"
)

// SlotCache defines the cache collaborator used by the booking and inventory
// use cases. The slot lock is a TTL-bounded fast-fail guard in front of the
// database commit point, never a correctness requirement; the available-slot
// listing cache trades short staleness for cheap reads.
type SlotCache interface {
	// AcquireSlotLock takes a short exclusive hold on a slot. Returns false
	// when another booking attempt already holds it.
	AcquireSlotLock(ctx context.Context, slotID string, ttl time.Duration) (bool, error)

	// ReleaseSlotLock drops the hold on a slot
	ReleaseSlotLock(ctx context.Context, slotID string) error

	// GetAvailableSlots returns the cached available-slot listing, or nil on miss
	GetAvailableSlots(ctx context.Context) ([]entity.Slot, error)

	// SetAvailableSlots stores the available-slot listing
	SetAvailableSlots(ctx context.Context, slots []entity.Slot) error

	// InvalidateAvailableSlots drops the cached listing after a write
	InvalidateAvailableSlots(ctx context.Context) error
}
