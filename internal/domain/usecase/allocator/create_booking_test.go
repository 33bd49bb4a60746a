package allocator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/slot-booking/internal/domain/entity"
	errs "github.com/amirhossein-jamali/slot-booking/internal/domain/error"
	eventport "github.com/amirhossein-jamali/slot-booking/internal/domain/port/event"
	"github.com/amirhossein-jamali/slot-booking/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/slot-booking/internal/infrastructure/adapter/logger"
	cachemocks "github.com/amirhossein-jamali/slot-booking/mocks/port/cache"
	coremocks "github.com/amirhossein-jamali/slot-booking/mocks/port/core"
	eventmocks "github.com/amirhossein-jamali/slot-booking/mocks/port/event"
	persistencemocks "github.com/amirhossein-jamali/slot-booking/mocks/port/persistence"
)

func activeUser(id string) *entity.User {
	return &entity.User{ID: id, Username: "u-" + id, Password: "pw", Role: entity.RoleUser, IsActive: true}
}

func availableSlot(id string) *entity.Slot {
	return &entity.Slot{ID: id, Location: "Downtown Garage", SlotNumber: 1, IsAvailable: true}
}

func validInput() usecase.CreateBookingInput {
	return usecase.CreateBookingInput{
		UserID:        "user-1",
		SlotID:        "slot-1",
		VehicleNumber: "KA01AB1234",
		VehicleType:   "sedan",
	}
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	noopLogger := logger.NewNoopLogger()

	t.Run("Successful booking creation", func(t *testing.T) {
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockSlots := persistencemocks.NewMockSlotRepository(t)
		mockBookings := persistencemocks.NewMockBookingRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.On("Now").Return(fixedTime).Maybe()

		mockUsers.On("GetByID", mock.Anything, "user-1").Return(activeUser("user-1"), nil).Once()
		mockSlots.On("GetByID", mock.Anything, "slot-1").Return(availableSlot("slot-1"), nil).Once()
		mockBookings.On("CountActiveByUser", mock.Anything, "user-1").Return(int64(0), nil).Once()
		mockBookings.On("CreateConfirmed", mock.Anything, mock.MatchedBy(func(b *entity.Booking) bool {
			return b.UserID == "user-1" && b.SlotID == "slot-1" && b.Status == entity.StatusConfirmed
		}), DefaultMaxActiveBookings).Return(nil).Once()

		svc := NewService(mockUsers, mockSlots, mockBookings, mockTime, noopLogger)

		booking, err := svc.CreateBooking(ctx, validInput())

		require.NoError(t, err)
		assert.NotEmpty(t, booking.ID)
		assert.Equal(t, "KA01AB1234", booking.VehicleNumber)
		assert.Equal(t, entity.StatusConfirmed, booking.Status)
		assert.Equal(t, fixedTime, booking.CreatedAt)
	})

	t.Run("Unknown user maps to invalid user", func(t *testing.T) {
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockSlots := persistencemocks.NewMockSlotRepository(t)
		mockBookings := persistencemocks.NewMockBookingRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockUsers.On("GetByID", mock.Anything, "user-1").Return(nil, errs.ErrUserNotFound).Once()

		svc := NewService(mockUsers, mockSlots, mockBookings, mockTime, noopLogger)

		booking, err := svc.CreateBooking(ctx, validInput())

		assert.Equal(t, errs.ErrUserInvalid, err)
		assert.Nil(t, booking)
	})

	t.Run("Inactive user cannot book", func(t *testing.T) {
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockSlots := persistencemocks.NewMockSlotRepository(t)
		mockBookings := persistencemocks.NewMockBookingRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		inactive := activeUser("user-1")
		inactive.IsActive = false
		mockUsers.On("GetByID", mock.Anything, "user-1").Return(inactive, nil).Once()

		svc := NewService(mockUsers, mockSlots, mockBookings, mockTime, noopLogger)

		booking, err := svc.CreateBooking(ctx, validInput())

		assert.Equal(t, errs.ErrUserInvalid, err)
		assert.Nil(t, booking)
	})

	t.Run("Unknown slot", func(t *testing.T) {
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockSlots := persistencemocks.NewMockSlotRepository(t)
		mockBookings := persistencemocks.NewMockBookingRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockUsers.On("GetByID", mock.Anything, "user-1").Return(activeUser("user-1"), nil).Once()
		mockSlots.On("GetByID", mock.Anything, "slot-1").Return(nil, errs.ErrSlotNotFound).Once()

		svc := NewService(mockUsers, mockSlots, mockBookings, mockTime, noopLogger)

		booking, err := svc.CreateBooking(ctx, validInput())

		assert.Equal(t, errs.ErrSlotNotFound, err)
		assert.Nil(t, booking)
	})

	t.Run("Slot already booked", func(t *testing.T) {
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockSlots := persistencemocks.NewMockSlotRepository(t)
		mockBookings := persistencemocks.NewMockBookingRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		taken := availableSlot("slot-1")
		taken.IsAvailable = false
		mockUsers.On("GetByID", mock.Anything, "user-1").Return(activeUser("user-1"), nil).Once()
		mockSlots.On("GetByID", mock.Anything, "slot-1").Return(taken, nil).Once()

		svc := NewService(mockUsers, mockSlots, mockBookings, mockTime, noopLogger)

		booking, err := svc.CreateBooking(ctx, validInput())

		assert.Equal(t, errs.ErrSlotUnavailable, err)
		assert.Nil(t, booking)
		mockBookings.AssertNotCalled(t, "CreateConfirmed", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Per-user booking limit reached", func(t *testing.T) {
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockSlots := persistencemocks.NewMockSlotRepository(t)
		mockBookings := persistencemocks.NewMockBookingRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockUsers.On("GetByID", mock.Anything, "user-1").Return(activeUser("user-1"), nil).Once()
		mockSlots.On("GetByID", mock.Anything, "slot-1").Return(availableSlot("slot-1"), nil).Once()
		mockBookings.On("CountActiveByUser", mock.Anything, "user-1").Return(int64(DefaultMaxActiveBookings), nil).Once()

		svc := NewService(mockUsers, mockSlots, mockBookings, mockTime, noopLogger)

		booking, err := svc.CreateBooking(ctx, validInput())

		assert.Equal(t, errs.ErrBookingLimitExceeded, err)
		assert.Nil(t, booking)
	})

	t.Run("Lowered limit via option", func(t *testing.T) {
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockSlots := persistencemocks.NewMockSlotRepository(t)
		mockBookings := persistencemocks.NewMockBookingRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockUsers.On("GetByID", mock.Anything, "user-1").Return(activeUser("user-1"), nil).Once()
		mockSlots.On("GetByID", mock.Anything, "slot-1").Return(availableSlot("slot-1"), nil).Once()
		mockBookings.On("CountActiveByUser", mock.Anything, "user-1").Return(int64(1), nil).Once()

		svc := NewService(mockUsers, mockSlots, mockBookings, mockTime, noopLogger, WithMaxActiveBookings(1))

		booking, err := svc.CreateBooking(ctx, validInput())

		assert.Equal(t, errs.ErrBookingLimitExceeded, err)
		assert.Nil(t, booking)
	})

	t.Run("Blank vehicle number", func(t *testing.T) {
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockSlots := persistencemocks.NewMockSlotRepository(t)
		mockBookings := persistencemocks.NewMockBookingRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockUsers.On("GetByID", mock.Anything, "user-1").Return(activeUser("user-1"), nil).Once()
		mockSlots.On("GetByID", mock.Anything, "slot-1").Return(availableSlot("slot-1"), nil).Once()
		mockBookings.On("CountActiveByUser", mock.Anything, "user-1").Return(int64(0), nil).Once()

		svc := NewService(mockUsers, mockSlots, mockBookings, mockTime, noopLogger)

		input := validInput()
		input.VehicleNumber = "   "
		booking, err := svc.CreateBooking(ctx, input)

		assert.Equal(t, errs.ErrInvalidRequest, err)
		assert.Nil(t, booking)
	})

	t.Run("Lost race at the commit point", func(t *testing.T) {
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockSlots := persistencemocks.NewMockSlotRepository(t)
		mockBookings := persistencemocks.NewMockBookingRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.On("Now").Return(fixedTime).Maybe()

		mockUsers.On("GetByID", mock.Anything, "user-1").Return(activeUser("user-1"), nil).Once()
		mockSlots.On("GetByID", mock.Anything, "slot-1").Return(availableSlot("slot-1"), nil).Once()
		mockBookings.On("CountActiveByUser", mock.Anything, "user-1").Return(int64(0), nil).Once()
		mockBookings.On("CreateConfirmed", mock.Anything, mock.Anything, DefaultMaxActiveBookings).
			Return(errs.ErrSlotUnavailable).Once()

		svc := NewService(mockUsers, mockSlots, mockBookings, mockTime, noopLogger)

		booking, err := svc.CreateBooking(ctx, validInput())

		assert.Equal(t, errs.ErrSlotUnavailable, err)
		assert.Nil(t, booking)
	})

	t.Run("Slot lock held by another attempt", func(t *testing.T) {
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockSlots := persistencemocks.NewMockSlotRepository(t)
		mockBookings := persistencemocks.NewMockBookingRepository(t)
		mockCache := cachemocks.NewMockSlotCache(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockUsers.On("GetByID", mock.Anything, "user-1").Return(activeUser("user-1"), nil).Once()
		mockSlots.On("GetByID", mock.Anything, "slot-1").Return(availableSlot("slot-1"), nil).Once()
		mockBookings.On("CountActiveByUser", mock.Anything, "user-1").Return(int64(0), nil).Once()
		mockCache.On("AcquireSlotLock", mock.Anything, "slot-1", mock.Anything).Return(false, nil).Once()

		svc := NewService(mockUsers, mockSlots, mockBookings, mockTime, noopLogger, WithSlotCache(mockCache))

		booking, err := svc.CreateBooking(ctx, validInput())

		assert.Equal(t, errs.ErrSlotLocked, err)
		assert.Nil(t, booking)
		mockBookings.AssertNotCalled(t, "CreateConfirmed", mock.Anything, mock.Anything, mock.Anything)
		mockCache.AssertNotCalled(t, "ReleaseSlotLock", mock.Anything, mock.Anything)
	})

	t.Run("Cache failure falls through to storage commit", func(t *testing.T) {
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockSlots := persistencemocks.NewMockSlotRepository(t)
		mockBookings := persistencemocks.NewMockBookingRepository(t)
		mockCache := cachemocks.NewMockSlotCache(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.On("Now").Return(fixedTime).Maybe()

		mockUsers.On("GetByID", mock.Anything, "user-1").Return(activeUser("user-1"), nil).Once()
		mockSlots.On("GetByID", mock.Anything, "slot-1").Return(availableSlot("slot-1"), nil).Once()
		mockBookings.On("CountActiveByUser", mock.Anything, "user-1").Return(int64(0), nil).Once()
		mockCache.On("AcquireSlotLock", mock.Anything, "slot-1", mock.Anything).
			Return(false, assert.AnError).Once()
		mockBookings.On("CreateConfirmed", mock.Anything, mock.Anything, DefaultMaxActiveBookings).Return(nil).Once()
		mockCache.On("InvalidateAvailableSlots", mock.Anything).Return(nil).Once()

		svc := NewService(mockUsers, mockSlots, mockBookings, mockTime, noopLogger, WithSlotCache(mockCache))

		booking, err := svc.CreateBooking(ctx, validInput())

		require.NoError(t, err)
		assert.NotNil(t, booking)
	})

	t.Run("Full path with cache and publisher", func(t *testing.T) {
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockSlots := persistencemocks.NewMockSlotRepository(t)
		mockBookings := persistencemocks.NewMockBookingRepository(t)
		mockCache := cachemocks.NewMockSlotCache(t)
		mockPublisher := eventmocks.NewMockPublisher(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.On("Now").Return(fixedTime).Maybe()

		mockUsers.On("GetByID", mock.Anything, "user-1").Return(activeUser("user-1"), nil).Once()
		mockSlots.On("GetByID", mock.Anything, "slot-1").Return(availableSlot("slot-1"), nil).Once()
		mockBookings.On("CountActiveByUser", mock.Anything, "user-1").Return(int64(1), nil).Once()
		mockCache.On("AcquireSlotLock", mock.Anything, "slot-1", 10*time.Second).Return(true, nil).Once()
		mockBookings.On("CreateConfirmed", mock.Anything, mock.Anything, DefaultMaxActiveBookings).Return(nil).Once()
		mockCache.On("InvalidateAvailableSlots", mock.Anything).Return(nil).Once()
		mockPublisher.On("PublishBookingEvent", mock.Anything, mock.MatchedBy(func(evt eventport.BookingEvent) bool {
			return evt.Type == eventport.TypeBookingCreated &&
				evt.SlotID == "slot-1" &&
				evt.Status == string(entity.StatusConfirmed)
		})).Return(nil).Once()
		mockCache.On("ReleaseSlotLock", mock.Anything, "slot-1").Return(nil).Once()

		svc := NewService(mockUsers, mockSlots, mockBookings, mockTime, noopLogger,
			WithSlotCache(mockCache),
			WithPublisher(mockPublisher),
			WithSlotLockTTL(10*time.Second),
		)

		booking, err := svc.CreateBooking(ctx, validInput())

		require.NoError(t, err)
		assert.NotNil(t, booking)
	})

	t.Run("Publisher failure does not fail the booking", func(t *testing.T) {
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockSlots := persistencemocks.NewMockSlotRepository(t)
		mockBookings := persistencemocks.NewMockBookingRepository(t)
		mockPublisher := eventmocks.NewMockPublisher(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.On("Now").Return(fixedTime).Maybe()

		mockUsers.On("GetByID", mock.Anything, "user-1").Return(activeUser("user-1"), nil).Once()
		mockSlots.On("GetByID", mock.Anything, "slot-1").Return(availableSlot("slot-1"), nil).Once()
		mockBookings.On("CountActiveByUser", mock.Anything, "user-1").Return(int64(0), nil).Once()
		mockBookings.On("CreateConfirmed", mock.Anything, mock.Anything, DefaultMaxActiveBookings).Return(nil).Once()
		mockPublisher.On("PublishBookingEvent", mock.Anything, mock.Anything).Return(assert.AnError).Once()

		svc := NewService(mockUsers, mockSlots, mockBookings, mockTime, noopLogger, WithPublisher(mockPublisher))

		booking, err := svc.CreateBooking(ctx, validInput())

		require.NoError(t, err)
		assert.NotNil(t, booking)
	})
}
