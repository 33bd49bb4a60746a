package model

import (
	"time"

	"github.com/amirhossein-jamali/slot-booking/internal/domain/entity"
)

// Booking represents the database model for bookings
type Booking struct {
	ID            string    `gorm:"primaryKey;type:uuid"`
	UserID        string    `gorm:"not null;type:uuid;index"`
	SlotID        string    `gorm:"not null;type:uuid;index"`
	VehicleNumber string    `gorm:"not null;size:50"`
	VehicleType   string    `gorm:"size:50"`
	Status        string    `gorm:"not null;size:20;index"`
	CreatedAt     time.Time `gorm:"not null"`
	CancelledAt   *time.Time

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID"`
	Slot Slot `gorm:"foreignKey:SlotID;references:ID"`
}

// TableName specifies the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

// ToEntity converts the database model to a domain entity
func (b *Booking) ToEntity() *entity.Booking {
	return &entity.Booking{
		ID:            b.ID,
		UserID:        b.UserID,
		SlotID:        b.SlotID,
		VehicleNumber: b.VehicleNumber,
		VehicleType:   b.VehicleType,
		Status:        entity.BookingStatus(b.Status),
		CreatedAt:     b.CreatedAt,
		CancelledAt:   b.CancelledAt,
	}
}

// BookingFromEntity converts a domain entity to the database model
func BookingFromEntity(b *entity.Booking) *Booking {
	return &Booking{
		ID:            b.ID,
		UserID:        b.UserID,
		SlotID:        b.SlotID,
		VehicleNumber: b.VehicleNumber,
		VehicleType:   b.VehicleType,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
		CancelledAt:   b.CancelledAt,
	}
}
