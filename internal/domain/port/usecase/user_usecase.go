package usecase

import (
	"context"

	"github.com/amirhossein-jamali/slot-booking/internal/domain/entity"
)

// UserUseCase handles registration, login and account lookups
type UserUseCase interface {
	// Register creates a new account.
	//
	// - ErrDuplicateUser: username already taken
	// - ErrInvalidRequest: empty username/password or unknown role
	Register(ctx context.Context, username, password, role string) (*entity.User, error)

	// Login authenticates by username and password.
	//
	// - ErrInvalidCredentials: unknown user or wrong password
	// - ErrUserInvalid: account is inactive
	Login(ctx context.Context, username, password string) (*entity.User, error)

	// GetByID retrieves an account
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
