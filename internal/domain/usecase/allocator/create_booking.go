package allocator

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/slot-booking/internal/domain/entity"
	errs "github.com/amirhossein-jamali/slot-booking/internal/domain/error"
	eventport "github.com/amirhossein-jamali/slot-booking/internal/domain/port/event"
	"github.com/amirhossein-jamali/slot-booking/internal/domain/port/usecase"
)

// CreateBooking reserves a slot for a user. Preconditions are checked in
// order with the first failure winning; the actual commit happens inside
// the repository's single-transaction paired write, so the precondition
// reads are a fast path and never the authority on availability.
func (s *Service) CreateBooking(ctx context.Context, input usecase.CreateBookingInput) (*entity.Booking, error) {
	// 1. Acting user must exist and be active
	user, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrUserInvalid
		}
		return nil, err
	}
	if !user.CanBook() {
		s.logger.Warn("Booking attempt by inactive user", map[string]any{
			"user_id": input.UserID,
		})
		return nil, errs.ErrUserInvalid
	}

	// 2. Slot must exist
	slot, err := s.slots.GetByID(ctx, input.SlotID)
	if err != nil {
		return nil, err
	}

	// 3. Slot must be available
	if !slot.IsAvailable {
		return nil, errs.ErrSlotUnavailable
	}

	// 4. Per-user confirmed-booking limit
	active, err := s.bookings.CountActiveByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if active >= int64(s.maxActiveBookings) {
		s.logger.Info("Booking limit reached", map[string]any{
			"user_id":         input.UserID,
			"active_bookings": active,
			"limit":           s.maxActiveBookings,
		})
		return nil, errs.ErrBookingLimitExceeded
	}

	// Optional fast-fail guard: a short exclusive hold on the slot keeps
	// concurrent attempts from reaching the database commit point together.
	locked := false
	if s.cache != nil {
		ok, err := s.cache.AcquireSlotLock(ctx, input.SlotID, s.slotLockTTL)
		if err != nil {
			s.logger.Warn("Slot lock unavailable, falling through to storage commit", map[string]any{
				"slot_id": input.SlotID,
				"error":   err.Error(),
			})
		} else if !ok {
			return nil, errs.ErrSlotLocked
		} else {
			locked = true
		}
	}
	defer func() {
		if locked {
			_ = s.cache.ReleaseSlotLock(ctx, input.SlotID)
		}
	}()

	booking, err := entity.NewBooking(input.UserID, input.SlotID, input.VehicleNumber, input.VehicleType, s.timeProvider)
	if err != nil {
		return nil, err
	}

	// Commit point: conditional availability flip + booking insert in one
	// storage transaction. A lost race surfaces as ErrSlotUnavailable here
	// even though the precondition read saw the slot as free.
	if err := s.bookings.CreateConfirmed(ctx, booking, s.maxActiveBookings); err != nil {
		if errs.IsSlotUnavailableError(err) || errs.IsBookingLimitError(err) {
			return nil, err
		}
		s.logger.Error("Failed to create booking", map[string]any{
			"user_id": input.UserID,
			"slot_id": input.SlotID,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.invalidateListing(ctx)
	s.publish(ctx, eventport.TypeBookingCreated, booking)

	s.logger.Info("Booking created", map[string]any{
		"booking_id":     booking.ID,
		"user_id":        booking.UserID,
		"slot_id":        booking.SlotID,
		"vehicle_number": booking.VehicleNumber,
	})

	return booking, nil
}

// invalidateListing drops the cached available-slot listing after a write
func (s *Service) invalidateListing(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateAvailableSlots(ctx); err != nil {
		s.logger.Warn("Failed to invalidate slot listing cache", map[string]any{
			"error": err.Error(),
		})
	}
}

// publish emits a booking lifecycle event best-effort
func (s *Service) publish(ctx context.Context, eventType string, booking *entity.Booking) {
	if s.publisher == nil {
		return
	}
	evt := eventport.BookingEvent{
		Type:          eventType,
		BookingID:     booking.ID,
		UserID:        booking.UserID,
		SlotID:        booking.SlotID,
		VehicleNumber: booking.VehicleNumber,
		Status:        string(booking.Status),
		OccurredAt:    s.timeProvider.Now(),
	}
	if err := s.publisher.PublishBookingEvent(ctx, evt); err != nil {
		s.logger.Warn("Failed to publish booking event", map[string]any{
			"event_type": eventType,
			"booking_id": booking.ID,
			"error":      err.Error(),
		})
	}
}
