package mocks

import (
	entity "devicestore/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockDeviceFingerprinter is an autogenerated mock type for the DeviceFingerprinter type
type MockDeviceFingerprinter struct {
	mock.Mock
}

type MockDeviceFingerprinter_Expecter struct {
	mock *mock.Mock
}

func (_m *MockDeviceFingerprinter) EXPECT() *MockDeviceFingerprinter_Expecter {
	return &MockDeviceFingerprinter_Expecter{mock: &_m.Mock}
}

// Detect provides a mock function with given fields:
func (_m *MockDeviceFingerprinter) Detect() entity.DeviceFingerprint {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Detect")
	}

	var r0 entity.DeviceFingerprint
	if rf, ok := ret.Get(0).(func() entity.DeviceFingerprint); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(entity.DeviceFingerprint)
	}

	return r0
}

// MockDeviceFingerprinter_Detect_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Detect'
type MockDeviceFingerprinter_Detect_Call struct {
	*mock.Call
}

// Detect is a helper method to define mock.On call
func (_e *MockDeviceFingerprinter_Expecter) Detect() *MockDeviceFingerprinter_Detect_Call {
	return &MockDeviceFingerprinter_Detect_Call{Call: _e.mock.On("Detect")}
}

func (_c *MockDeviceFingerprinter_Detect_Call) Run(run func()) *MockDeviceFingerprinter_Detect_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockDeviceFingerprinter_Detect_Call) Return(_a0 entity.DeviceFingerprint) *MockDeviceFingerprinter_Detect_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockDeviceFingerprinter_Detect_Call) RunAndReturn(run func() entity.DeviceFingerprint) *MockDeviceFingerprinter_Detect_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockDeviceFingerprinter creates a new instance of MockDeviceFingerprinter. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockDeviceFingerprinter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDeviceFingerprinter {
	mock := &MockDeviceFingerprinter{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
