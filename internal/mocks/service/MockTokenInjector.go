package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// MockTokenInjector is an autogenerated mock type for the TokenInjector type
type MockTokenInjector struct {
	mock.Mock
}

type MockTokenInjector_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenInjector) EXPECT() *MockTokenInjector_Expecter {
	return &MockTokenInjector_Expecter{mock: &_m.Mock}
}

// SetPermission provides a mock function with given fields: granted
func (_m *MockTokenInjector) SetPermission(granted bool) {
	_m.Called(granted)
}

// MockTokenInjector_SetPermission_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SetPermission'
type MockTokenInjector_SetPermission_Call struct {
	*mock.Call
}

// SetPermission is a helper method to define mock.On call
//   - granted bool
func (_e *MockTokenInjector_Expecter) SetPermission(granted interface{}) *MockTokenInjector_SetPermission_Call {
	return &MockTokenInjector_SetPermission_Call{Call: _e.mock.On("SetPermission", granted)}
}

func (_c *MockTokenInjector_SetPermission_Call) Run(run func(granted bool)) *MockTokenInjector_SetPermission_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(bool))
	})
	return _c
}

func (_c *MockTokenInjector_SetPermission_Call) Return() *MockTokenInjector_SetPermission_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockTokenInjector_SetPermission_Call) RunAndReturn(run func(bool)) *MockTokenInjector_SetPermission_Call {
	_c.Call.Return(run)
	return _c
}

// SetToken provides a mock function with given fields: ctx, token
func (_m *MockTokenInjector) SetToken(ctx context.Context, token string) error {
	ret := _m.Called(ctx, token)

	if len(ret) == 0 {
		panic("no return value specified for SetToken")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, token)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockTokenInjector_SetToken_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SetToken'
type MockTokenInjector_SetToken_Call struct {
	*mock.Call
}

// SetToken is a helper method to define mock.On call
//   - ctx context.Context
//   - token string
func (_e *MockTokenInjector_Expecter) SetToken(ctx interface{}, token interface{}) *MockTokenInjector_SetToken_Call {
	return &MockTokenInjector_SetToken_Call{Call: _e.mock.On("SetToken", ctx, token)}
}

func (_c *MockTokenInjector_SetToken_Call) Run(run func(ctx context.Context, token string)) *MockTokenInjector_SetToken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockTokenInjector_SetToken_Call) Return(_a0 error) *MockTokenInjector_SetToken_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockTokenInjector_SetToken_Call) RunAndReturn(run func(context.Context, string) error) *MockTokenInjector_SetToken_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockTokenInjector creates a new instance of MockTokenInjector. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockTokenInjector(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenInjector {
	mock := &MockTokenInjector{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
