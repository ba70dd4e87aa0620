package mocks

import (
	context "context"
	service "devicestore/internal/domain/service"

	mock "github.com/stretchr/testify/mock"
)

// MockMessagingProvider is an autogenerated mock type for the MessagingProvider type
type MockMessagingProvider struct {
	mock.Mock
}

type MockMessagingProvider_Expecter struct {
	mock *mock.Mock
}

func (_m *MockMessagingProvider) EXPECT() *MockMessagingProvider_Expecter {
	return &MockMessagingProvider_Expecter{mock: &_m.Mock}
}

// GetToken provides a mock function with given fields: ctx
func (_m *MockMessagingProvider) GetToken(ctx context.Context) (string, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for GetToken")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (string, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) string); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockMessagingProvider_GetToken_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetToken'
type MockMessagingProvider_GetToken_Call struct {
	*mock.Call
}

// GetToken is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockMessagingProvider_Expecter) GetToken(ctx interface{}) *MockMessagingProvider_GetToken_Call {
	return &MockMessagingProvider_GetToken_Call{Call: _e.mock.On("GetToken", ctx)}
}

func (_c *MockMessagingProvider_GetToken_Call) Run(run func(ctx context.Context)) *MockMessagingProvider_GetToken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockMessagingProvider_GetToken_Call) Return(_a0 string, _a1 error) *MockMessagingProvider_GetToken_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockMessagingProvider_GetToken_Call) RunAndReturn(run func(context.Context) (string, error)) *MockMessagingProvider_GetToken_Call {
	_c.Call.Return(run)
	return _c
}

// OnTokenRefresh provides a mock function with given fields: fn
func (_m *MockMessagingProvider) OnTokenRefresh(fn service.TokenRefreshFunc) service.ListenerHandle {
	ret := _m.Called(fn)

	if len(ret) == 0 {
		panic("no return value specified for OnTokenRefresh")
	}

	var r0 service.ListenerHandle
	if rf, ok := ret.Get(0).(func(service.TokenRefreshFunc) service.ListenerHandle); ok {
		r0 = rf(fn)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(service.ListenerHandle)
		}
	}

	return r0
}

// MockMessagingProvider_OnTokenRefresh_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'OnTokenRefresh'
type MockMessagingProvider_OnTokenRefresh_Call struct {
	*mock.Call
}

// OnTokenRefresh is a helper method to define mock.On call
//   - fn service.TokenRefreshFunc
func (_e *MockMessagingProvider_Expecter) OnTokenRefresh(fn interface{}) *MockMessagingProvider_OnTokenRefresh_Call {
	return &MockMessagingProvider_OnTokenRefresh_Call{Call: _e.mock.On("OnTokenRefresh", fn)}
}

func (_c *MockMessagingProvider_OnTokenRefresh_Call) Run(run func(fn service.TokenRefreshFunc)) *MockMessagingProvider_OnTokenRefresh_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(service.TokenRefreshFunc))
	})
	return _c
}

func (_c *MockMessagingProvider_OnTokenRefresh_Call) Return(_a0 service.ListenerHandle) *MockMessagingProvider_OnTokenRefresh_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockMessagingProvider_OnTokenRefresh_Call) RunAndReturn(run func(service.TokenRefreshFunc) service.ListenerHandle) *MockMessagingProvider_OnTokenRefresh_Call {
	_c.Call.Return(run)
	return _c
}

// RequestPermission provides a mock function with given fields: ctx
func (_m *MockMessagingProvider) RequestPermission(ctx context.Context) error {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for RequestPermission")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockMessagingProvider_RequestPermission_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RequestPermission'
type MockMessagingProvider_RequestPermission_Call struct {
	*mock.Call
}

// RequestPermission is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockMessagingProvider_Expecter) RequestPermission(ctx interface{}) *MockMessagingProvider_RequestPermission_Call {
	return &MockMessagingProvider_RequestPermission_Call{Call: _e.mock.On("RequestPermission", ctx)}
}

func (_c *MockMessagingProvider_RequestPermission_Call) Run(run func(ctx context.Context)) *MockMessagingProvider_RequestPermission_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockMessagingProvider_RequestPermission_Call) Return(_a0 error) *MockMessagingProvider_RequestPermission_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockMessagingProvider_RequestPermission_Call) RunAndReturn(run func(context.Context) error) *MockMessagingProvider_RequestPermission_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockMessagingProvider creates a new instance of MockMessagingProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockMessagingProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMessagingProvider {
	mock := &MockMessagingProvider{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
