package allocator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/slot-booking/internal/domain/entity"
	errs "github.com/amirhossein-jamali/slot-booking/internal/domain/error"
	"github.com/amirhossein-jamali/slot-booking/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/slot-booking/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/slot-booking/mocks/port/persistence"
)

func TestListBookings(t *testing.T) {
	ctx := context.Background()
	noopLogger := logger.NewNoopLogger()

	t.Run("Regular user sees own bookings", func(t *testing.T) {
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockSlots := persistencemocks.NewMockSlotRepository(t)
		mockBookings := persistencemocks.NewMockBookingRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		own := []entity.Booking{{ID: "b1", UserID: "user-1"}}
		mockBookings.On("ListByUser", mock.Anything, "user-1").Return(own, nil).Once()

		svc := NewService(mockUsers, mockSlots, mockBookings, mockTime, noopLogger)

		bookings, err := svc.ListBookings(ctx, "user-1", false)

		require.NoError(t, err)
		assert.Len(t, bookings, 1)
		mockUsers.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Admin view returns every booking", func(t *testing.T) {
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockSlots := persistencemocks.NewMockSlotRepository(t)
		mockBookings := persistencemocks.NewMockBookingRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		admin := &entity.User{ID: "admin-1", Role: entity.RoleAdmin, IsActive: true}
		all := []entity.Booking{{ID: "b1"}, {ID: "b2"}}
		mockUsers.On("GetByID", mock.Anything, "admin-1").Return(admin, nil).Once()
		mockBookings.On("ListAll", mock.Anything).Return(all, nil).Once()

		svc := NewService(mockUsers, mockSlots, mockBookings, mockTime, noopLogger)

		bookings, err := svc.ListBookings(ctx, "admin-1", true)

		require.NoError(t, err)
		assert.Len(t, bookings, 2)
	})

	t.Run("Admin view is forbidden for regular users", func(t *testing.T) {
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockSlots := persistencemocks.NewMockSlotRepository(t)
		mockBookings := persistencemocks.NewMockBookingRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		regular := &entity.User{ID: "user-1", Role: entity.RoleUser, IsActive: true}
		mockUsers.On("GetByID", mock.Anything, "user-1").Return(regular, nil).Once()

		svc := NewService(mockUsers, mockSlots, mockBookings, mockTime, noopLogger)

		bookings, err := svc.ListBookings(ctx, "user-1", true)

		assert.Equal(t, errs.ErrForbidden, err)
		assert.Nil(t, bookings)
		mockBookings.AssertNotCalled(t, "ListAll", mock.Anything)
	})

	t.Run("Admin view with unknown user is forbidden", func(t *testing.T) {
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockSlots := persistencemocks.NewMockSlotRepository(t)
		mockBookings := persistencemocks.NewMockBookingRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockUsers.On("GetByID", mock.Anything, "ghost").Return(nil, errs.ErrUserNotFound).Once()

		svc := NewService(mockUsers, mockSlots, mockBookings, mockTime, noopLogger)

		bookings, err := svc.ListBookings(ctx, "ghost", true)

		assert.Equal(t, errs.ErrForbidden, err)
		assert.Nil(t, bookings)
	})
}
