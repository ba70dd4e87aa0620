package mocks

import (
	context "context"
	entity "devicestore/internal/domain/entity"
	service "devicestore/internal/domain/service"

	mock "github.com/stretchr/testify/mock"
)

// MockIdentityProvider is an autogenerated mock type for the IdentityProvider type
type MockIdentityProvider struct {
	mock.Mock
}

type MockIdentityProvider_Expecter struct {
	mock *mock.Mock
}

func (_m *MockIdentityProvider) EXPECT() *MockIdentityProvider_Expecter {
	return &MockIdentityProvider_Expecter{mock: &_m.Mock}
}

// CurrentUser provides a mock function with given fields: ctx
func (_m *MockIdentityProvider) CurrentUser(ctx context.Context) *entity.Identity {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for CurrentUser")
	}

	var r0 *entity.Identity
	if rf, ok := ret.Get(0).(func(context.Context) *entity.Identity); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Identity)
		}
	}

	return r0
}

// MockIdentityProvider_CurrentUser_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CurrentUser'
type MockIdentityProvider_CurrentUser_Call struct {
	*mock.Call
}

// CurrentUser is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockIdentityProvider_Expecter) CurrentUser(ctx interface{}) *MockIdentityProvider_CurrentUser_Call {
	return &MockIdentityProvider_CurrentUser_Call{Call: _e.mock.On("CurrentUser", ctx)}
}

func (_c *MockIdentityProvider_CurrentUser_Call) Run(run func(ctx context.Context)) *MockIdentityProvider_CurrentUser_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockIdentityProvider_CurrentUser_Call) Return(_a0 *entity.Identity) *MockIdentityProvider_CurrentUser_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockIdentityProvider_CurrentUser_Call) RunAndReturn(run func(context.Context) *entity.Identity) *MockIdentityProvider_CurrentUser_Call {
	_c.Call.Return(run)
	return _c
}

// OnAuthStateChanged provides a mock function with given fields: fn
func (_m *MockIdentityProvider) OnAuthStateChanged(fn service.AuthStateFunc) service.ListenerHandle {
	ret := _m.Called(fn)

	if len(ret) == 0 {
		panic("no return value specified for OnAuthStateChanged")
	}

	var r0 service.ListenerHandle
	if rf, ok := ret.Get(0).(func(service.AuthStateFunc) service.ListenerHandle); ok {
		r0 = rf(fn)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(service.ListenerHandle)
		}
	}

	return r0
}

// MockIdentityProvider_OnAuthStateChanged_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'OnAuthStateChanged'
type MockIdentityProvider_OnAuthStateChanged_Call struct {
	*mock.Call
}

// OnAuthStateChanged is a helper method to define mock.On call
//   - fn service.AuthStateFunc
func (_e *MockIdentityProvider_Expecter) OnAuthStateChanged(fn interface{}) *MockIdentityProvider_OnAuthStateChanged_Call {
	return &MockIdentityProvider_OnAuthStateChanged_Call{Call: _e.mock.On("OnAuthStateChanged", fn)}
}

func (_c *MockIdentityProvider_OnAuthStateChanged_Call) Run(run func(fn service.AuthStateFunc)) *MockIdentityProvider_OnAuthStateChanged_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(service.AuthStateFunc))
	})
	return _c
}

func (_c *MockIdentityProvider_OnAuthStateChanged_Call) Return(_a0 service.ListenerHandle) *MockIdentityProvider_OnAuthStateChanged_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockIdentityProvider_OnAuthStateChanged_Call) RunAndReturn(run func(service.AuthStateFunc) service.ListenerHandle) *MockIdentityProvider_OnAuthStateChanged_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockIdentityProvider creates a new instance of MockIdentityProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockIdentityProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIdentityProvider {
	mock := &MockIdentityProvider{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
