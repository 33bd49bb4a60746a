package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/slot-booking/internal/domain/entity"
	"github.com/amirhossein-jamali/slot-booking/internal/domain/port/persistence"
)

// MockSlotRepository is a testify mock for the persistence.SlotRepository port
type MockSlotRepository struct {
	mock.Mock
}

// NewMockSlotRepository creates a mock and registers expectation checks on cleanup
func NewMockSlotRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSlotRepository {
	m := &MockSlotRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockSlotRepository) GetByID(ctx context.Context, id string) (*entity.Slot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Slot), args.Error(1)
}

func (m *MockSlotRepository) List(ctx context.Context, filter persistence.SlotFilter) ([]entity.Slot, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Slot), args.Error(1)
}

func (m *MockSlotRepository) Create(ctx context.Context, slot *entity.Slot) error {
	args := m.Called(ctx, slot)
	return args.Error(0)
}

func (m *MockSlotRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
