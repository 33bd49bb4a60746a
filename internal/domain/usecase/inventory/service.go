package inventory

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/slot-booking/internal/domain/entity"
	errs "github.com/amirhossein-jamali/slot-booking/internal/domain/error"
	cacheport "github.com/amirhossein-jamali/slot-booking/internal/domain/port/cache"
	coreport "github.com/amirhossein-jamali/slot-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/slot-booking/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/slot-booking/internal/domain/port/usecase"
)

// Service implements slot inventory management. It creates and deletes slot
// definitions but never writes the availability flag; that transition belongs
// to the booking allocator alone.
type Service struct {
	slots        persistence.SlotRepository
	bookings     persistence.BookingRepository
	cache        cacheport.SlotCache // optional listing cache
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// Option configures optional collaborators of the inventory manager
type Option func(*Service)

// WithSlotCache attaches the listing cache
func WithSlotCache(c cacheport.SlotCache) Option {
	return func(s *Service) {
		s.cache = c
	}
}

// NewService creates a slot inventory manager
func NewService(
	slots persistence.SlotRepository,
	bookings persistence.BookingRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		slots:        slots,
		bookings:     bookings,
		timeProvider: timeProvider,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateSlot adds a new slot with availability=true. The repository enforces
// the (location, number) uniqueness constraint; the duplicate error maps to
// ErrDuplicateSlot for callers.
func (s *Service) CreateSlot(ctx context.Context, location string, slotNumber int) (*entity.Slot, error) {
	slot, err := entity.NewSlot(location, slotNumber, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.slots.Create(ctx, slot); err != nil {
		if !errors.Is(err, errs.ErrDuplicateSlot) {
			s.logger.Error("Failed to create slot", map[string]any{
				"location":    location,
				"slot_number": slotNumber,
				"error":       err.Error(),
			})
		}
		return nil, err
	}

	s.invalidateListing(ctx)
	s.logger.Info("Slot created", map[string]any{
		"slot_id":     slot.ID,
		"location":    slot.Location,
		"slot_number": slot.SlotNumber,
	})

	return slot, nil
}

// DeleteSlot removes a slot unless a confirmed booking still references it.
// Cancelled or completed bookings don't block deletion.
func (s *Service) DeleteSlot(ctx context.Context, slotID string) error {
	if _, err := s.slots.GetByID(ctx, slotID); err != nil {
		return err
	}

	inUse, err := s.bookings.HasActiveForSlot(ctx, slotID)
	if err != nil {
		return err
	}
	if inUse {
		return errs.ErrSlotInUse
	}

	if err := s.slots.Delete(ctx, slotID); err != nil {
		s.logger.Error("Failed to delete slot", map[string]any{
			"slot_id": slotID,
			"error":   err.Error(),
		})
		return err
	}

	s.invalidateListing(ctx)
	s.logger.Info("Slot deleted", map[string]any{
		"slot_id": slotID,
	})

	return nil
}

// ListSlots returns slots, serving the available-only listing from the cache
// when one is configured. Cache misses and failures fall through to storage.
func (s *Service) ListSlots(ctx context.Context, availableOnly bool) ([]entity.Slot, error) {
	if availableOnly && s.cache != nil {
		if cached, err := s.cache.GetAvailableSlots(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	slots, err := s.slots.List(ctx, persistence.SlotFilter{AvailableOnly: availableOnly})
	if err != nil {
		return nil, err
	}

	if availableOnly && s.cache != nil {
		if err := s.cache.SetAvailableSlots(ctx, slots); err != nil {
			s.logger.Warn("Failed to cache slot listing", map[string]any{
				"error": err.Error(),
			})
		}
	}

	return slots, nil
}

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

var _ usecase.SlotInventory = (*Service)(nil)
