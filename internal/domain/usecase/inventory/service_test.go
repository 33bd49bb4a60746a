package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/slot-booking/internal/domain/entity"
	errs "github.com/amirhossein-jamali/slot-booking/internal/domain/error"
	"github.com/amirhossein-jamali/slot-booking/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/slot-booking/internal/infrastructure/adapter/logger"
	cachemocks "github.com/amirhossein-jamali/slot-booking/mocks/port/cache"
	coremocks "github.com/amirhossein-jamali/slot-booking/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/slot-booking/mocks/port/persistence"
)

func TestCreateSlot(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	noopLogger := logger.NewNoopLogger()

	t.Run("Successful slot creation", func(t *testing.T) {
		mockSlots := persistencemocks.NewMockSlotRepository(t)
		mockBookings := persistencemocks.NewMockBookingRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.On("Now").Return(fixedTime).Maybe()

		mockSlots.On("Create", mock.Anything, mock.MatchedBy(func(s *entity.Slot) bool {
			return s.Location == "Downtown Garage" && s.SlotNumber == 4 && s.IsAvailable
		})).Return(nil).Once()

		svc := NewService(mockSlots, mockBookings, mockTime, noopLogger)

		slot, err := svc.CreateSlot(ctx, "Downtown Garage", 4)

		require.NoError(t, err)
		assert.NotEmpty(t, slot.ID)
		assert.True(t, slot.IsAvailable)
	})

	t.Run("Duplicate location and number", func(t *testing.T) {
		mockSlots := persistencemocks.NewMockSlotRepository(t)
		mockBookings := persistencemocks.NewMockBookingRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.On("Now").Return(fixedTime).Maybe()

		mockSlots.On("Create", mock.Anything, mock.Anything).Return(errs.ErrDuplicateSlot).Once()

		svc := NewService(mockSlots, mockBookings, mockTime, noopLogger)

		slot, err := svc.CreateSlot(ctx, "Downtown Garage", 4)

		assert.Equal(t, errs.ErrDuplicateSlot, err)
		assert.Nil(t, slot)
	})

	t.Run("Invalid input", func(t *testing.T) {
		mockSlots := persistencemocks.NewMockSlotRepository(t)
		mockBookings := persistencemocks.NewMockBookingRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		svc := NewService(mockSlots, mockBookings, mockTime, noopLogger)

		slot, err := svc.CreateSlot(ctx, "", 4)
		assert.Equal(t, errs.ErrInvalidRequest, err)
		assert.Nil(t, slot)

		slot, err = svc.CreateSlot(ctx, "Downtown Garage", 0)
		assert.Equal(t, errs.ErrInvalidRequest, err)
		assert.Nil(t, slot)
	})

	t.Run("Creation invalidates the listing cache", func(t *testing.T) {
		mockSlots := persistencemocks.NewMockSlotRepository(t)
		mockBookings := persistencemocks.NewMockBookingRepository(t)
		mockCache := cachemocks.NewMockSlotCache(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.On("Now").Return(fixedTime).Maybe()

		mockSlots.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		mockCache.On("InvalidateAvailableSlots", mock.Anything).Return(nil).Once()

		svc := NewService(mockSlots, mockBookings, mockTime, noopLogger, WithSlotCache(mockCache))

		_, err := svc.CreateSlot(ctx, "Downtown Garage", 4)
		require.NoError(t, err)
	})
}

func TestDeleteSlot(t *testing.T) {
	ctx := context.Background()
	noopLogger := logger.NewNoopLogger()
	slot := &entity.Slot{ID: "slot-1", Location: "Downtown Garage", SlotNumber: 4, IsAvailable: true}

	t.Run("Successful deletion", func(t *testing.T) {
		mockSlots := persistencemocks.NewMockSlotRepository(t)
		mockBookings := persistencemocks.NewMockBookingRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockSlots.On("GetByID", mock.Anything, "slot-1").Return(slot, nil).Once()
		mockBookings.On("HasActiveForSlot", mock.Anything, "slot-1").Return(false, nil).Once()
		mockSlots.On("Delete", mock.Anything, "slot-1").Return(nil).Once()

		svc := NewService(mockSlots, mockBookings, mockTime, noopLogger)

		require.NoError(t, svc.DeleteSlot(ctx, "slot-1"))
	})

	t.Run("Slot with a confirmed booking is protected", func(t *testing.T) {
		mockSlots := persistencemocks.NewMockSlotRepository(t)
		mockBookings := persistencemocks.NewMockBookingRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockSlots.On("GetByID", mock.Anything, "slot-1").Return(slot, nil).Once()
		mockBookings.On("HasActiveForSlot", mock.Anything, "slot-1").Return(true, nil).Once()

		svc := NewService(mockSlots, mockBookings, mockTime, noopLogger)

		err := svc.DeleteSlot(ctx, "slot-1")

		assert.Equal(t, errs.ErrSlotInUse, err)
		mockSlots.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Unknown slot", func(t *testing.T) {
		mockSlots := persistencemocks.NewMockSlotRepository(t)
		mockBookings := persistencemocks.NewMockBookingRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockSlots.On("GetByID", mock.Anything, "slot-1").Return(nil, errs.ErrSlotNotFound).Once()

		svc := NewService(mockSlots, mockBookings, mockTime, noopLogger)

		assert.Equal(t, errs.ErrSlotNotFound, svc.DeleteSlot(ctx, "slot-1"))
	})
}

func TestListSlots(t *testing.T) {
	ctx := context.Background()
	noopLogger := logger.NewNoopLogger()
	listing := []entity.Slot{
		{ID: "slot-1", Location: "Downtown Garage", SlotNumber: 1, IsAvailable: true},
		{ID: "slot-2", Location: "Downtown Garage", SlotNumber: 2, IsAvailable: true},
	}

	t.Run("Listing without cache hits storage", func(t *testing.T) {
		mockSlots := persistencemocks.NewMockSlotRepository(t)
		mockBookings := persistencemocks.NewMockBookingRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockSlots.On("List", mock.Anything, persistence.SlotFilter{AvailableOnly: true}).Return(listing, nil).Once()

		svc := NewService(mockSlots, mockBookings, mockTime, noopLogger)

		slots, err := svc.ListSlots(ctx, true)

		require.NoError(t, err)
		assert.Len(t, slots, 2)
	})

	t.Run("Cache hit skips storage", func(t *testing.T) {
		mockSlots := persistencemocks.NewMockSlotRepository(t)
		mockBookings := persistencemocks.NewMockBookingRepository(t)
		mockCache := cachemocks.NewMockSlotCache(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockCache.On("GetAvailableSlots", mock.Anything).Return(listing, nil).Once()

		svc := NewService(mockSlots, mockBookings, mockTime, noopLogger, WithSlotCache(mockCache))

		slots, err := svc.ListSlots(ctx, true)

		require.NoError(t, err)
		assert.Len(t, slots, 2)
		mockSlots.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("Cache miss populates the cache", func(t *testing.T) {
		mockSlots := persistencemocks.NewMockSlotRepository(t)
		mockBookings := persistencemocks.NewMockBookingRepository(t)
		mockCache := cachemocks.NewMockSlotCache(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockCache.On("GetAvailableSlots", mock.Anything).Return(nil, nil).Once()
		mockSlots.On("List", mock.Anything, persistence.SlotFilter{AvailableOnly: true}).Return(listing, nil).Once()
		mockCache.On("SetAvailableSlots", mock.Anything, listing).Return(nil).Once()

		svc := NewService(mockSlots, mockBookings, mockTime, noopLogger, WithSlotCache(mockCache))

		slots, err := svc.ListSlots(ctx, true)

		require.NoError(t, err)
		assert.Len(t, slots, 2)
	})

	t.Run("Full listing bypasses the cache", func(t *testing.T) {
		mockSlots := persistencemocks.NewMockSlotRepository(t)
		mockBookings := persistencemocks.NewMockBookingRepository(t)
		mockCache := cachemocks.NewMockSlotCache(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockSlots.On("List", mock.Anything, persistence.SlotFilter{AvailableOnly: false}).Return(listing, nil).Once()

		svc := NewService(mockSlots, mockBookings, mockTime, noopLogger, WithSlotCache(mockCache))

		slots, err := svc.ListSlots(ctx, false)

		require.NoError(t, err)
		assert.Len(t, slots, 2)
		mockCache.AssertNotCalled(t, "GetAvailableSlots", mock.Anything)
	})
}
