package cache

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/slot-booking/internal/domain/entity"
)

// MockSlotCache is a testify mock for the cache.SlotCache port
type MockSlotCache struct {
	mock.Mock
}

// NewMockSlotCache creates a mock and registers expectation checks on cleanup
func NewMockSlotCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSlotCache {
	m := &MockSlotCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockSlotCache) AcquireSlotLock(ctx context.Context, slotID string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, slotID, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *MockSlotCache) ReleaseSlotLock(ctx context.Context, slotID string) error {
	args := m.Called(ctx, slotID)
	return args.Error(0)
}

func (m *MockSlotCache) GetAvailableSlots(ctx context.Context) ([]entity.Slot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Slot), args.Error(1)
}

func (m *MockSlotCache) SetAvailableSlots(ctx context.Context, slots []entity.Slot) error {
	args := m.Called(ctx, slots)
	return args.Error(0)
}

func (m *MockSlotCache) InvalidateAvailableSlots(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
