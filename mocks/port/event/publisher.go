package event

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/slot-booking/internal/domain/port/event"
)

// MockPublisher is a testify mock for the event.Publisher port
type MockPublisher struct {
	mock.Mock
}

// NewMockPublisher creates a mock and registers expectation checks on cleanup
func NewMockPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPublisher {
	m := &MockPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPublisher) PublishBookingEvent(ctx context.Context, evt event.BookingEvent) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}
