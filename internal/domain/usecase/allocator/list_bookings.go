package allocator

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/slot-booking/internal/domain/entity"
	errs "github.com/amirhossein-jamali/slot-booking/internal/domain/error"
)

// ListBookings returns the acting user's own bookings; with adminView an
// admin sees every booking in the system.
func (s *Service) ListBookings(ctx context.Context, actingUserID string, adminView bool) ([]entity.Booking, error) {
	if adminView {
		actor, err := s.users.GetByID(ctx, actingUserID)
		if err != nil {
			if errors.Is(err, errs.ErrUserNotFound) {
				return nil, errs.ErrForbidden
			}
			return nil, err
		}
		if !actor.IsAdmin() {
			return nil, errs.ErrForbidden
		}
		return s.bookings.ListAll(ctx)
	}

	return s.bookings.ListByUser(ctx, actingUserID)
}
