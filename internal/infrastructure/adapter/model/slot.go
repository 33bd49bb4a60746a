package model

import (
	"time"

	"github.com/amirhossein-jamali/slot-booking/internal/domain/entity"
)

// Slot represents the database model for charging slots.
// The composite unique index enforces one slot number per location.
type Slot struct {
	ID          string    `gorm:"primaryKey;type:uuid"`
	Location    string    `gorm:"not null;size:255;uniqueIndex:idx_location_number"`
	SlotNumber  int       `gorm:"not null;uniqueIndex:idx_location_number"`
	IsAvailable bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for Slot
func (Slot) TableName() string {
	return "slots"
}

// ToEntity converts the database model to a domain entity
func (s *Slot) ToEntity() *entity.Slot {
	return &entity.Slot{
		ID:          s.ID,
		Location:    s.Location,
		SlotNumber:  s.SlotNumber,
		IsAvailable: s.IsAvailable,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// SlotFromEntity converts a domain entity to the database model
func SlotFromEntity(s *entity.Slot) *Slot {
	return &Slot{
		ID:          s.ID,
		Location:    s.Location,
		SlotNumber:  s.SlotNumber,
		IsAvailable: s.IsAvailable,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
