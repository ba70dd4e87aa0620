package mocks

import (
	context "context"
	usecase "devicestore/internal/usecase"

	mock "github.com/stretchr/testify/mock"
)

// MockSubscriptionUsecase is an autogenerated mock type for the SubscriptionUsecase type
type MockSubscriptionUsecase struct {
	mock.Mock
}

type MockSubscriptionUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockSubscriptionUsecase) EXPECT() *MockSubscriptionUsecase_Expecter {
	return &MockSubscriptionUsecase_Expecter{mock: &_m.Mock}
}

// SignOut provides a mock function with given fields: ctx
func (_m *MockSubscriptionUsecase) SignOut(ctx context.Context) error {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for SignOut")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockSubscriptionUsecase_SignOut_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SignOut'
type MockSubscriptionUsecase_SignOut_Call struct {
	*mock.Call
}

// SignOut is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockSubscriptionUsecase_Expecter) SignOut(ctx interface{}) *MockSubscriptionUsecase_SignOut_Call {
	return &MockSubscriptionUsecase_SignOut_Call{Call: _e.mock.On("SignOut", ctx)}
}

func (_c *MockSubscriptionUsecase_SignOut_Call) Run(run func(ctx context.Context)) *MockSubscriptionUsecase_SignOut_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockSubscriptionUsecase_SignOut_Call) Return(_a0 error) *MockSubscriptionUsecase_SignOut_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockSubscriptionUsecase_SignOut_Call) RunAndReturn(run func(context.Context) error) *MockSubscriptionUsecase_SignOut_Call {
	_c.Call.Return(run)
	return _c
}

// State provides a mock function with given fields:
func (_m *MockSubscriptionUsecase) State() usecase.SubscriptionState {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for State")
	}

	var r0 usecase.SubscriptionState
	if rf, ok := ret.Get(0).(func() usecase.SubscriptionState); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(usecase.SubscriptionState)
	}

	return r0
}

// MockSubscriptionUsecase_State_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'State'
type MockSubscriptionUsecase_State_Call struct {
	*mock.Call
}

// State is a helper method to define mock.On call
func (_e *MockSubscriptionUsecase_Expecter) State() *MockSubscriptionUsecase_State_Call {
	return &MockSubscriptionUsecase_State_Call{Call: _e.mock.On("State")}
}

func (_c *MockSubscriptionUsecase_State_Call) Run(run func()) *MockSubscriptionUsecase_State_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockSubscriptionUsecase_State_Call) Return(_a0 usecase.SubscriptionState) *MockSubscriptionUsecase_State_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockSubscriptionUsecase_State_Call) RunAndReturn(run func() usecase.SubscriptionState) *MockSubscriptionUsecase_State_Call {
	_c.Call.Return(run)
	return _c
}

// Subscribe provides a mock function with given fields: ctx
func (_m *MockSubscriptionUsecase) Subscribe(ctx context.Context) error {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Subscribe")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockSubscriptionUsecase_Subscribe_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Subscribe'
type MockSubscriptionUsecase_Subscribe_Call struct {
	*mock.Call
}

// Subscribe is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockSubscriptionUsecase_Expecter) Subscribe(ctx interface{}) *MockSubscriptionUsecase_Subscribe_Call {
	return &MockSubscriptionUsecase_Subscribe_Call{Call: _e.mock.On("Subscribe", ctx)}
}

func (_c *MockSubscriptionUsecase_Subscribe_Call) Run(run func(ctx context.Context)) *MockSubscriptionUsecase_Subscribe_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockSubscriptionUsecase_Subscribe_Call) Return(_a0 error) *MockSubscriptionUsecase_Subscribe_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockSubscriptionUsecase_Subscribe_Call) RunAndReturn(run func(context.Context) error) *MockSubscriptionUsecase_Subscribe_Call {
	_c.Call.Return(run)
	return _c
}

// Unsubscribe provides a mock function with given fields: ctx
func (_m *MockSubscriptionUsecase) Unsubscribe(ctx context.Context) error {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Unsubscribe")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockSubscriptionUsecase_Unsubscribe_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Unsubscribe'
type MockSubscriptionUsecase_Unsubscribe_Call struct {
	*mock.Call
}

// Unsubscribe is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockSubscriptionUsecase_Expecter) Unsubscribe(ctx interface{}) *MockSubscriptionUsecase_Unsubscribe_Call {
	return &MockSubscriptionUsecase_Unsubscribe_Call{Call: _e.mock.On("Unsubscribe", ctx)}
}

func (_c *MockSubscriptionUsecase_Unsubscribe_Call) Run(run func(ctx context.Context)) *MockSubscriptionUsecase_Unsubscribe_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockSubscriptionUsecase_Unsubscribe_Call) Return(_a0 error) *MockSubscriptionUsecase_Unsubscribe_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockSubscriptionUsecase_Unsubscribe_Call) RunAndReturn(run func(context.Context) error) *MockSubscriptionUsecase_Unsubscribe_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockSubscriptionUsecase creates a new instance of MockSubscriptionUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockSubscriptionUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSubscriptionUsecase {
	mock := &MockSubscriptionUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
