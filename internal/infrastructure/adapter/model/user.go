package model

import (
	"time"

	"github.com/amirhossein-jamali/slot-booking/internal/domain/entity"
)

// User represents the database model for users
type User struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	Username  string    `gorm:"uniqueIndex;not null;size:100"`
	Password  string    `gorm:"not null;size:255"`
	Role      string    `gorm:"not null;size:20;default:user"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// ToEntity converts the database model to a domain entity
func (u *User) ToEntity() *entity.User {
	return &entity.User{
		ID:        u.ID,
		Username:  u.Username,
		Password:  u.Password,
		Role:      entity.Role(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// UserFromEntity converts a domain entity to the database model
func UserFromEntity(u *entity.User) *User {
	return &User{
		ID:        u.ID,
		Username:  u.Username,
		Password:  u.Password,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}
