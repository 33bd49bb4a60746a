package migration

import (
	"context"
	"errors"

	errs "github.com/amirhossein-jamali/slot-booking/internal/domain/error"
	"github.com/amirhossein-jamali/slot-booking/internal/domain/port/usecase"
)

// CreateDefaultAdmin registers the bootstrap admin account when it does not
// exist yet. Credentials come from configuration; an empty username disables
// the seed entirely.
func CreateDefaultAdmin(ctx context.Context, users usecase.UserUseCase, username, password string) error {
	if username == "" {
		return nil
	}

	_, err := users.Register(ctx, username, password, "admin")
	if err != nil && !errors.Is(err, errs.ErrDuplicateUser) {
		return err
	}
	return nil
}
