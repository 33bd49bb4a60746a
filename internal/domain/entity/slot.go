package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/slot-booking/internal/domain/error"
	coreport "github.com/amirhossein-jamali/slot-booking/internal/domain/port/core"
	"github.com/google/uuid"
)

// Slot represents a bookable charging position identified by location + number.
// The availability flag is maintained exclusively by the booking allocator's
// paired-write path; inventory management never sets it directly.
type Slot struct {
	ID          string    // Unique identifier (UUID)
	Location    string    // Site the slot belongs to
	SlotNumber  int       // Unique within a location
	IsAvailable bool      // false iff a confirmed booking references this slot
	CreatedAt   time.Time // When the slot was created
	UpdatedAt   time.Time // When availability last changed
}

// NewSlot creates a new available slot with a generated ID
func NewSlot(location string, slotNumber int, timeProvider coreport.TimeProvider) (*Slot, error) {
	if strings.TrimSpace(location) == "" {
		return nil, errs.ErrInvalidRequest
	}
	if slotNumber <= 0 {
		return nil, errs.ErrInvalidRequest
	}

	now := timeProvider.Now()
	return &Slot{
		ID:          uuid.NewString(),
		Location:    location,
		SlotNumber:  slotNumber,
		IsAvailable: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Reserve flips the slot to unavailable. Fails if the slot is already booked.
func (s *Slot) Reserve(timeProvider coreport.TimeProvider) error {
	if !s.IsAvailable {
		return errs.ErrSlotUnavailable
	}
	s.IsAvailable = false
	s.UpdatedAt = timeProvider.Now()
	return nil
}

// Release flips the slot back to available after a cancellation
func (s *Slot) Release(timeProvider coreport.TimeProvider) {
	s.IsAvailable = true
	s.UpdatedAt = timeProvider.Now()
}
