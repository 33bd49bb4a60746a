package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/slot-booking/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/slot-booking/mocks/port/core"
)

func TestNewBooking(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.On("Now").Return(fixedTime).Maybe()

	t.Run("Valid booking creation", func(t *testing.T) {
		booking, err := NewBooking("user-1", "slot-1", "KA01AB1234", "sedan", mockTime)

		require.NoError(t, err)
		assert.NotEmpty(t, booking.ID)
		assert.Equal(t, "user-1", booking.UserID)
		assert.Equal(t, "slot-1", booking.SlotID)
		assert.Equal(t, "KA01AB1234", booking.VehicleNumber)
		assert.Equal(t, "sedan", booking.VehicleType)
		assert.Equal(t, StatusConfirmed, booking.Status)
		assert.Equal(t, fixedTime, booking.CreatedAt)
		assert.Nil(t, booking.CancelledAt)
	})

	t.Run("Vehicle type is optional", func(t *testing.T) {
		booking, err := NewBooking("user-1", "slot-1", "KA01AB1234", "", mockTime)

		require.NoError(t, err)
		assert.Empty(t, booking.VehicleType)
	})

	t.Run("Missing IDs should return error", func(t *testing.T) {
		testCases := []struct {
			name   string
			userID string
			slotID string
		}{
			{"empty user", "", "slot-1"},
			{"empty slot", "user-1", ""},
			{"both empty", "", ""},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				booking, err := NewBooking(tc.userID, tc.slotID, "KA01AB1234", "", mockTime)
				assert.Equal(t, errs.ErrInvalidRequest, err)
				assert.Nil(t, booking)
			})
		}
	})

	t.Run("Blank vehicle number should return error", func(t *testing.T) {
		booking, err := NewBooking("user-1", "slot-1", "   ", "", mockTime)

		assert.Equal(t, errs.ErrInvalidRequest, err)
		assert.Nil(t, booking)
	})
}

func TestBookingCancel(t *testing.T) {
	createTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	cancelTime := time.Date(2025, 3, 2, 9, 30, 0, 0, time.UTC)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.On("Now").Return(createTime).Once()

	booking, err := NewBooking("user-1", "slot-1", "KA01AB1234", "", mockTime)
	require.NoError(t, err)
	assert.True(t, booking.IsActive())

	mockTime.On("Now").Return(cancelTime).Once()
	require.NoError(t, booking.Cancel(mockTime))

	assert.Equal(t, StatusCancelled, booking.Status)
	assert.False(t, booking.IsActive())
	require.NotNil(t, booking.CancelledAt)
	assert.Equal(t, cancelTime, *booking.CancelledAt)

	// Cancelling twice must fail without clobbering the recorded timestamp
	err = booking.Cancel(mockTime)
	assert.Equal(t, errs.ErrInvalidState, err)
	assert.Equal(t, cancelTime, *booking.CancelledAt)
}

func TestBookingComplete(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.On("Now").Return(fixedTime).Maybe()

	booking, err := NewBooking("user-1", "slot-1", "KA01AB1234", "", mockTime)
	require.NoError(t, err)

	require.NoError(t, booking.Complete())
	assert.Equal(t, StatusCompleted, booking.Status)
	assert.False(t, booking.IsActive())

	// Completed bookings cannot be cancelled
	assert.Equal(t, errs.ErrInvalidState, booking.Cancel(mockTime))
	assert.Equal(t, errs.ErrInvalidState, booking.Complete())
}

func TestBookingCancellableBy(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.On("Now").Return(fixedTime).Maybe()

	owner, err := NewUser("alice", "s3cret", RoleUser, mockTime)
	require.NoError(t, err)
	stranger, err := NewUser("bob", "s3cret", RoleUser, mockTime)
	require.NoError(t, err)
	admin, err := NewUser("boss", "s3cret", RoleAdmin, mockTime)
	require.NoError(t, err)

	booking, err := NewBooking(owner.ID, "slot-1", "KA01AB1234", "", mockTime)
	require.NoError(t, err)

	assert.True(t, booking.CancellableBy(owner))
	assert.True(t, booking.CancellableBy(admin))
	assert.False(t, booking.CancellableBy(stranger))
	assert.False(t, booking.CancellableBy(nil))
}

func TestIsValidStatus(t *testing.T) {
	for _, status := range []string{"confirmed", "cancelled", "completed"} {
		assert.True(t, IsValidStatus(status))
	}
	for _, status := range []string{"", "pending", "Confirmed"} {
		assert.False(t, IsValidStatus(status))
	}
}
