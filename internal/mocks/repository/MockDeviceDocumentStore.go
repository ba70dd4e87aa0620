package mocks

import (
	context "context"
	entity "devicestore/internal/domain/entity"
	repository "devicestore/internal/domain/repository"

	mock "github.com/stretchr/testify/mock"
)

// MockDeviceDocumentStore is an autogenerated mock type for the DeviceDocumentStore type
type MockDeviceDocumentStore struct {
	mock.Mock
}

type MockDeviceDocumentStore_Expecter struct {
	mock *mock.Mock
}

func (_m *MockDeviceDocumentStore) EXPECT() *MockDeviceDocumentStore_Expecter {
	return &MockDeviceDocumentStore_Expecter{mock: &_m.Mock}
}

// Get provides a mock function with given fields: ctx, userID
func (_m *MockDeviceDocumentStore) Get(ctx context.Context, userID string) (*entity.UserDevices, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 *entity.UserDevices
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.UserDevices, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *entity.UserDevices); ok {
		r0 = rf(ctx, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.UserDevices)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockDeviceDocumentStore_Get_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Get'
type MockDeviceDocumentStore_Get_Call struct {
	*mock.Call
}

// Get is a helper method to define mock.On call
//   - ctx context.Context
//   - userID string
func (_e *MockDeviceDocumentStore_Expecter) Get(ctx interface{}, userID interface{}) *MockDeviceDocumentStore_Get_Call {
	return &MockDeviceDocumentStore_Get_Call{Call: _e.mock.On("Get", ctx, userID)}
}

func (_c *MockDeviceDocumentStore_Get_Call) Run(run func(ctx context.Context, userID string)) *MockDeviceDocumentStore_Get_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockDeviceDocumentStore_Get_Call) Return(_a0 *entity.UserDevices, _a1 error) *MockDeviceDocumentStore_Get_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockDeviceDocumentStore_Get_Call) RunAndReturn(run func(context.Context, string) (*entity.UserDevices, error)) *MockDeviceDocumentStore_Get_Call {
	_c.Call.Return(run)
	return _c
}

// RunTransaction provides a mock function with given fields: ctx, fn
func (_m *MockDeviceDocumentStore) RunTransaction(ctx context.Context, fn func(context.Context, repository.DeviceDocumentTx) error) error {
	ret := _m.Called(ctx, fn)

	if len(ret) == 0 {
		panic("no return value specified for RunTransaction")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, func(context.Context, repository.DeviceDocumentTx) error) error); ok {
		r0 = rf(ctx, fn)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockDeviceDocumentStore_RunTransaction_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RunTransaction'
type MockDeviceDocumentStore_RunTransaction_Call struct {
	*mock.Call
}

// RunTransaction is a helper method to define mock.On call
//   - ctx context.Context
//   - fn func(context.Context, repository.DeviceDocumentTx) error
func (_e *MockDeviceDocumentStore_Expecter) RunTransaction(ctx interface{}, fn interface{}) *MockDeviceDocumentStore_RunTransaction_Call {
	return &MockDeviceDocumentStore_RunTransaction_Call{Call: _e.mock.On("RunTransaction", ctx, fn)}
}

func (_c *MockDeviceDocumentStore_RunTransaction_Call) Run(run func(ctx context.Context, fn func(context.Context, repository.DeviceDocumentTx) error)) *MockDeviceDocumentStore_RunTransaction_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(func(context.Context, repository.DeviceDocumentTx) error))
	})
	return _c
}

func (_c *MockDeviceDocumentStore_RunTransaction_Call) Return(_a0 error) *MockDeviceDocumentStore_RunTransaction_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockDeviceDocumentStore_RunTransaction_Call) RunAndReturn(run func(context.Context, func(context.Context, repository.DeviceDocumentTx) error) error) *MockDeviceDocumentStore_RunTransaction_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockDeviceDocumentStore creates a new instance of MockDeviceDocumentStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockDeviceDocumentStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDeviceDocumentStore {
	mock := &MockDeviceDocumentStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
