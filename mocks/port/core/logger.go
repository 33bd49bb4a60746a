package core

import (
	"github.com/stretchr/testify/mock"
)

// MockLogger is a testify mock for the core.Logger port
type MockLogger struct {
	mock.Mock
}

// NewMockLogger creates a mock and registers expectation checks on cleanup
func NewMockLogger(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLogger {
	m := &MockLogger{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockLogger) Debug(msg string, fields map[string]any) {
	m.Called(msg, fields)
}

func (m *MockLogger) Info(msg string, fields map[string]any) {
	m.Called(msg, fields)
}

func (m *MockLogger) Warn(msg string, fields map[string]any) {
	m.Called(msg, fields)
}

func (m *MockLogger) Error(msg string, fields map[string]any) {
	m.Called(msg, fields)
}

func (m *MockLogger) Flush() error {
	args := m.Called()
	return args.Error(0)
}
