package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/slot-booking/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/slot-booking/mocks/port/core"
)

func TestNewSlot(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.On("Now").Return(fixedTime).Maybe()

	t.Run("Valid slot creation", func(t *testing.T) {
		slot, err := NewSlot("Downtown Garage", 4, mockTime)

		require.NoError(t, err)
		assert.NotEmpty(t, slot.ID)
		assert.Equal(t, "Downtown Garage", slot.Location)
		assert.Equal(t, 4, slot.SlotNumber)
		assert.True(t, slot.IsAvailable)
		assert.Equal(t, fixedTime, slot.CreatedAt)
		assert.Equal(t, fixedTime, slot.UpdatedAt)
	})

	t.Run("Empty location should return error", func(t *testing.T) {
		slot, err := NewSlot("  ", 4, mockTime)

		assert.Error(t, err)
		assert.Equal(t, errs.ErrInvalidRequest, err)
		assert.Nil(t, slot)
	})

	t.Run("Non-positive slot number should return error", func(t *testing.T) {
		for _, number := range []int{0, -1} {
			slot, err := NewSlot("Downtown Garage", number, mockTime)

			assert.Error(t, err)
			assert.Nil(t, slot)
		}
	})
}

func TestSlotReserveAndRelease(t *testing.T) {
	createTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	reserveTime := time.Date(2025, 3, 1, 14, 0, 0, 0, time.UTC)
	releaseTime := time.Date(2025, 3, 1, 16, 0, 0, 0, time.UTC)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.On("Now").Return(createTime).Once()

	slot, err := NewSlot("Downtown Garage", 4, mockTime)
	require.NoError(t, err)

	mockTime.On("Now").Return(reserveTime).Once()
	require.NoError(t, slot.Reserve(mockTime))
	assert.False(t, slot.IsAvailable)
	assert.Equal(t, createTime, slot.CreatedAt)
	assert.Equal(t, reserveTime, slot.UpdatedAt)

	// Reserving an already-taken slot fails and leaves the slot untouched
	err = slot.Reserve(mockTime)
	assert.Equal(t, errs.ErrSlotUnavailable, err)
	assert.Equal(t, reserveTime, slot.UpdatedAt)

	mockTime.On("Now").Return(releaseTime).Once()
	slot.Release(mockTime)
	assert.True(t, slot.IsAvailable)
	assert.Equal(t, releaseTime, slot.UpdatedAt)
}
