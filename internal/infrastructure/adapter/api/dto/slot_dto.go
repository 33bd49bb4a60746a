package dto

import (
	"time"

	"github.com/amirhossein-jamali/slot-booking/internal/domain/entity"
)

// CreateSlotRequest represents the body of POST /slots
type CreateSlotRequest struct {
	Location   string `json:"location" binding:"required"`
	SlotNumber int    `json:"slot_number" binding:"required,gt=0"`
}

// SlotResponse represents a slot in API responses
type SlotResponse struct {
	ID          string    `json:"id"`
	Location    string    `json:"location"`
	SlotNumber  int       `json:"slot_number"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewSlotResponse converts a slot entity into its API representation
func NewSlotResponse(s *entity.Slot) SlotResponse {
	return SlotResponse{
		ID:          s.ID,
		Location:    s.Location,
		SlotNumber:  s.SlotNumber,
		IsAvailable: s.IsAvailable,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// NewSlotListResponse converts a slot listing
func NewSlotListResponse(slots []entity.Slot) []SlotResponse {
	out := make([]SlotResponse, 0, len(slots))
	for i := range slots {
		out = append(out, NewSlotResponse(&slots[i]))
	}
	return out
}
