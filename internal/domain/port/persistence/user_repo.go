package persistence

import (
	"context"

	"github.com/amirhossein-jamali/slot-booking/internal/domain/entity"
)

// UserRepository defines the storage operations for user accounts
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If no user with the given ID exists
	// - ErrStorage: If the storage collaborator fails
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// GetByUsername retrieves a user by username, used at login and registration
	//
	// Possible errors:
	// - ErrUserNotFound: If no user with the given username exists
	// - ErrStorage: If the storage collaborator fails
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user
	//
	// Possible errors:
	// - ErrDuplicateUser: If the username is already taken
	// - ErrStorage: If the storage collaborator fails
	Create(ctx context.Context, user *entity.User) error
}
