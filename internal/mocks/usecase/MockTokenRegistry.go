package mocks

import (
	context "context"
	entity "devicestore/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockTokenRegistry is an autogenerated mock type for the TokenRegistry type
type MockTokenRegistry struct {
	mock.Mock
}

type MockTokenRegistry_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenRegistry) EXPECT() *MockTokenRegistry_Expecter {
	return &MockTokenRegistry_Expecter{mock: &_m.Mock}
}

// AddToken provides a mock function with given fields: ctx, userID, token
func (_m *MockTokenRegistry) AddToken(ctx context.Context, userID string, token string) error {
	ret := _m.Called(ctx, userID, token)

	if len(ret) == 0 {
		panic("no return value specified for AddToken")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) error); ok {
		r0 = rf(ctx, userID, token)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockTokenRegistry_AddToken_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'AddToken'
type MockTokenRegistry_AddToken_Call struct {
	*mock.Call
}

// AddToken is a helper method to define mock.On call
//   - ctx context.Context
//   - userID string
//   - token string
func (_e *MockTokenRegistry_Expecter) AddToken(ctx interface{}, userID interface{}, token interface{}) *MockTokenRegistry_AddToken_Call {
	return &MockTokenRegistry_AddToken_Call{Call: _e.mock.On("AddToken", ctx, userID, token)}
}

func (_c *MockTokenRegistry_AddToken_Call) Run(run func(ctx context.Context, userID string, token string)) *MockTokenRegistry_AddToken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *MockTokenRegistry_AddToken_Call) Return(_a0 error) *MockTokenRegistry_AddToken_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockTokenRegistry_AddToken_Call) RunAndReturn(run func(context.Context, string, string) error) *MockTokenRegistry_AddToken_Call {
	_c.Call.Return(run)
	return _c
}

// DeleteToken provides a mock function with given fields: ctx, userID, token
func (_m *MockTokenRegistry) DeleteToken(ctx context.Context, userID string, token string) error {
	ret := _m.Called(ctx, userID, token)

	if len(ret) == 0 {
		panic("no return value specified for DeleteToken")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) error); ok {
		r0 = rf(ctx, userID, token)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockTokenRegistry_DeleteToken_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DeleteToken'
type MockTokenRegistry_DeleteToken_Call struct {
	*mock.Call
}

// DeleteToken is a helper method to define mock.On call
//   - ctx context.Context
//   - userID string
//   - token string
func (_e *MockTokenRegistry_Expecter) DeleteToken(ctx interface{}, userID interface{}, token interface{}) *MockTokenRegistry_DeleteToken_Call {
	return &MockTokenRegistry_DeleteToken_Call{Call: _e.mock.On("DeleteToken", ctx, userID, token)}
}

func (_c *MockTokenRegistry_DeleteToken_Call) Run(run func(ctx context.Context, userID string, token string)) *MockTokenRegistry_DeleteToken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *MockTokenRegistry_DeleteToken_Call) Return(_a0 error) *MockTokenRegistry_DeleteToken_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockTokenRegistry_DeleteToken_Call) RunAndReturn(run func(context.Context, string, string) error) *MockTokenRegistry_DeleteToken_Call {
	_c.Call.Return(run)
	return _c
}

// ListDevices provides a mock function with given fields: ctx, userID
func (_m *MockTokenRegistry) ListDevices(ctx context.Context, userID string) ([]entity.Device, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for ListDevices")
	}

	var r0 []entity.Device
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) ([]entity.Device, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) []entity.Device); ok {
		r0 = rf(ctx, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]entity.Device)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTokenRegistry_ListDevices_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListDevices'
type MockTokenRegistry_ListDevices_Call struct {
	*mock.Call
}

// ListDevices is a helper method to define mock.On call
//   - ctx context.Context
//   - userID string
func (_e *MockTokenRegistry_Expecter) ListDevices(ctx interface{}, userID interface{}) *MockTokenRegistry_ListDevices_Call {
	return &MockTokenRegistry_ListDevices_Call{Call: _e.mock.On("ListDevices", ctx, userID)}
}

func (_c *MockTokenRegistry_ListDevices_Call) Run(run func(ctx context.Context, userID string)) *MockTokenRegistry_ListDevices_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockTokenRegistry_ListDevices_Call) Return(_a0 []entity.Device, _a1 error) *MockTokenRegistry_ListDevices_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTokenRegistry_ListDevices_Call) RunAndReturn(run func(context.Context, string) ([]entity.Device, error)) *MockTokenRegistry_ListDevices_Call {
	_c.Call.Return(run)
	return _c
}

// UpdateToken provides a mock function with given fields: ctx, userID, oldToken, newToken
func (_m *MockTokenRegistry) UpdateToken(ctx context.Context, userID string, oldToken string, newToken string) error {
	ret := _m.Called(ctx, userID, oldToken, newToken)

	if len(ret) == 0 {
		panic("no return value specified for UpdateToken")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, string) error); ok {
		r0 = rf(ctx, userID, oldToken, newToken)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockTokenRegistry_UpdateToken_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateToken'
type MockTokenRegistry_UpdateToken_Call struct {
	*mock.Call
}

// UpdateToken is a helper method to define mock.On call
//   - ctx context.Context
//   - userID string
//   - oldToken string
//   - newToken string
func (_e *MockTokenRegistry_Expecter) UpdateToken(ctx interface{}, userID interface{}, oldToken interface{}, newToken interface{}) *MockTokenRegistry_UpdateToken_Call {
	return &MockTokenRegistry_UpdateToken_Call{Call: _e.mock.On("UpdateToken", ctx, userID, oldToken, newToken)}
}

func (_c *MockTokenRegistry_UpdateToken_Call) Run(run func(ctx context.Context, userID string, oldToken string, newToken string)) *MockTokenRegistry_UpdateToken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string), args[3].(string))
	})
	return _c
}

func (_c *MockTokenRegistry_UpdateToken_Call) Return(_a0 error) *MockTokenRegistry_UpdateToken_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockTokenRegistry_UpdateToken_Call) RunAndReturn(run func(context.Context, string, string, string) error) *MockTokenRegistry_UpdateToken_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockTokenRegistry creates a new instance of MockTokenRegistry. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockTokenRegistry(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenRegistry {
	mock := &MockTokenRegistry{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
