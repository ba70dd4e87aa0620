package mocks

import (
	mock "github.com/stretchr/testify/mock"
)

// MockListenerHandle is an autogenerated mock type for the ListenerHandle type
type MockListenerHandle struct {
	mock.Mock
}

type MockListenerHandle_Expecter struct {
	mock *mock.Mock
}

func (_m *MockListenerHandle) EXPECT() *MockListenerHandle_Expecter {
	return &MockListenerHandle_Expecter{mock: &_m.Mock}
}

// Detach provides a mock function with given fields:
func (_m *MockListenerHandle) Detach() {
	_m.Called()
}

// MockListenerHandle_Detach_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Detach'
type MockListenerHandle_Detach_Call struct {
	*mock.Call
}

// Detach is a helper method to define mock.On call
func (_e *MockListenerHandle_Expecter) Detach() *MockListenerHandle_Detach_Call {
	return &MockListenerHandle_Detach_Call{Call: _e.mock.On("Detach")}
}

func (_c *MockListenerHandle_Detach_Call) Run(run func()) *MockListenerHandle_Detach_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockListenerHandle_Detach_Call) Return() *MockListenerHandle_Detach_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockListenerHandle_Detach_Call) RunAndReturn(run func()) *MockListenerHandle_Detach_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockListenerHandle creates a new instance of MockListenerHandle. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockListenerHandle(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockListenerHandle {
	mock := &MockListenerHandle{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
