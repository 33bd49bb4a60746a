package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/slot-booking/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/slot-booking/mocks/port/core"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.On("Now").Return(fixedTime).Maybe()

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser("alice", "s3cret", RoleUser, mockTime)

		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, RoleUser, user.Role)
		assert.True(t, user.IsActive)
		assert.Equal(t, fixedTime, user.CreatedAt)
	})

	t.Run("Admin role", func(t *testing.T) {
		user, err := NewUser("boss", "s3cret", RoleAdmin, mockTime)

		require.NoError(t, err)
		assert.True(t, user.IsAdmin())
	})

	t.Run("Empty username should return error", func(t *testing.T) {
		user, err := NewUser("   ", "s3cret", RoleUser, mockTime)

		assert.Error(t, err)
		assert.Equal(t, errs.ErrInvalidRequest, err)
		assert.Nil(t, user)
	})

	t.Run("Empty password should return error", func(t *testing.T) {
		user, err := NewUser("alice", "", RoleUser, mockTime)

		assert.Error(t, err)
		assert.Equal(t, errs.ErrInvalidRequest, err)
		assert.Nil(t, user)
	})

	t.Run("Unknown role should return error", func(t *testing.T) {
		user, err := NewUser("alice", "s3cret", Role("superuser"), mockTime)

		assert.Error(t, err)
		assert.Nil(t, user)
	})

	t.Run("Generated IDs are unique", func(t *testing.T) {
		first, err := NewUser("alice", "s3cret", RoleUser, mockTime)
		require.NoError(t, err)
		second, err := NewUser("bob", "s3cret", RoleUser, mockTime)
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
	})
}

func TestIsValidRole(t *testing.T) {
	testCases := []struct {
		role     string
		expected bool
	}{
		{"user", true},
		{"admin", true},
		{"", false},
		{"Admin", false},
		{"root", false},
	}

	for _, tc := range testCases {
		t.Run(tc.role, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsValidRole(tc.role))
		})
	}
}

func TestUserCanBook(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.On("Now").Return(fixedTime).Maybe()

	user, err := NewUser("alice", "s3cret", RoleUser, mockTime)
	require.NoError(t, err)

	assert.True(t, user.CanBook())

	user.IsActive = false
	assert.False(t, user.CanBook())
}

func TestUserCheckPassword(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.On("Now").Return(fixedTime).Maybe()

	user, err := NewUser("alice", "s3cret", RoleUser, mockTime)
	require.NoError(t, err)

	assert.True(t, user.CheckPassword("s3cret"))
	assert.False(t, user.CheckPassword("wrong"))
	assert.False(t, user.CheckPassword(""))
}
