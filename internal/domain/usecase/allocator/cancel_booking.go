package allocator

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/slot-booking/internal/domain/entity"
	errs "github.com/amirhossein-jamali/slot-booking/internal/domain/error"
	eventport "github.com/amirhossein-jamali/slot-booking/internal/domain/port/event"
)

// CancelBooking releases a booking's slot. Owners cancel their own bookings,
// admins cancel any. The persisted status update is conditional on the stored
// status still being confirmed, so a double cancel loses cleanly with
// ErrInvalidState instead of flipping the slot twice.
func (s *Service) CancelBooking(ctx context.Context, bookingID, actingUserID string) (*entity.Booking, error) {
	// 1. Booking must exist
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	// 2. Authorization: owner or admin
	if booking.UserID != actingUserID {
		actor, err := s.users.GetByID(ctx, actingUserID)
		if err != nil {
			if errors.Is(err, errs.ErrUserNotFound) {
				return nil, errs.ErrForbidden
			}
			return nil, err
		}
		if !actor.IsAdmin() {
			s.logger.Warn("Cancel attempt on another user's booking", map[string]any{
				"booking_id":     bookingID,
				"acting_user_id": actingUserID,
				"owner_id":       booking.UserID,
			})
			return nil, errs.ErrForbidden
		}
	}

	// 3. Only confirmed bookings can be cancelled
	if err := booking.Cancel(s.timeProvider); err != nil {
		return nil, err
	}

	// Commit point: conditional status update + availability flip in one
	// storage transaction.
	if err := s.bookings.CancelConfirmed(ctx, booking); err != nil {
		if errs.IsInvalidStateError(err) {
			return nil, err
		}
		s.logger.Error("Failed to cancel booking", map[string]any{
			"booking_id": bookingID,
			"error":      err.Error(),
		})
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.ReleaseSlotLock(ctx, booking.SlotID)
	}
	s.invalidateListing(ctx)
	s.publish(ctx, eventport.TypeBookingCancelled, booking)

	s.logger.Info("Booking cancelled", map[string]any{
		"booking_id":     booking.ID,
		"slot_id":        booking.SlotID,
		"acting_user_id": actingUserID,
	})

	return booking, nil
}
