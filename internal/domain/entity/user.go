package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/slot-booking/internal/domain/error"
	coreport "github.com/amirhossein-jamali/slot-booking/internal/domain/port/core"
	"github.com/google/uuid"
)

// Role represents the access level of a user
type Role string

const (
	// RoleUser is a regular user who books slots
	RoleUser Role = "user"
	// RoleAdmin manages slot inventory and sees all bookings
	RoleAdmin Role = "admin"
)

// IsValidRole checks if the given string is a valid role
func IsValidRole(role string) bool {
	return role == string(RoleUser) || role == string(RoleAdmin)
}

// User represents a registered account
type User struct {
	ID        string    // Unique identifier (UUID)
	Username  string    // Unique display name used for login
	Password  string    // Stored as provided; plaintext comparison at login is a known gap
	Role      Role      // user or admin
	IsActive  bool      // Inactive users cannot book
	CreatedAt time.Time // When the user registered
}

// NewUser creates a new active user with a generated ID
func NewUser(username, password string, role Role, timeProvider coreport.TimeProvider) (*User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, errs.ErrInvalidRequest
	}
	if password == "" {
		return nil, errs.ErrInvalidRequest
	}
	if !IsValidRole(string(role)) {
		return nil, errs.ErrInvalidRequest
	}

	return &User{
		ID:        uuid.NewString(),
		Username:  username,
		Password:  password,
		Role:      role,
		IsActive:  true,
		CreatedAt: timeProvider.Now(),
	}, nil
}

// IsAdmin reports whether the user has admin privileges
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanBook reports whether the user may create bookings
func (u *User) CanBook() bool {
	return u.IsActive
}

// CheckPassword compares the stored credential with the given one.
// Plaintext comparison, kept from the original system and flagged as a gap.
func (u *User) CheckPassword(password string) bool {
	return u.Password == password
}
