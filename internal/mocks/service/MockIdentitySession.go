package mocks

import (
	context "context"
	entity "devicestore/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockIdentitySession is an autogenerated mock type for the IdentitySession type
type MockIdentitySession struct {
	mock.Mock
}

type MockIdentitySession_Expecter struct {
	mock *mock.Mock
}

func (_m *MockIdentitySession) EXPECT() *MockIdentitySession_Expecter {
	return &MockIdentitySession_Expecter{mock: &_m.Mock}
}

// SignIn provides a mock function with given fields: ctx, idToken
func (_m *MockIdentitySession) SignIn(ctx context.Context, idToken string) (*entity.Identity, error) {
	ret := _m.Called(ctx, idToken)

	if len(ret) == 0 {
		panic("no return value specified for SignIn")
	}

	var r0 *entity.Identity
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.Identity, error)); ok {
		return rf(ctx, idToken)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *entity.Identity); ok {
		r0 = rf(ctx, idToken)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Identity)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, idToken)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockIdentitySession_SignIn_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SignIn'
type MockIdentitySession_SignIn_Call struct {
	*mock.Call
}

// SignIn is a helper method to define mock.On call
//   - ctx context.Context
//   - idToken string
func (_e *MockIdentitySession_Expecter) SignIn(ctx interface{}, idToken interface{}) *MockIdentitySession_SignIn_Call {
	return &MockIdentitySession_SignIn_Call{Call: _e.mock.On("SignIn", ctx, idToken)}
}

func (_c *MockIdentitySession_SignIn_Call) Run(run func(ctx context.Context, idToken string)) *MockIdentitySession_SignIn_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockIdentitySession_SignIn_Call) Return(_a0 *entity.Identity, _a1 error) *MockIdentitySession_SignIn_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockIdentitySession_SignIn_Call) RunAndReturn(run func(context.Context, string) (*entity.Identity, error)) *MockIdentitySession_SignIn_Call {
	_c.Call.Return(run)
	return _c
}

// SignOut provides a mock function with given fields: ctx
func (_m *MockIdentitySession) SignOut(ctx context.Context) error {
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

// MockIdentitySession_SignOut_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SignOut'
type MockIdentitySession_SignOut_Call struct {
	*mock.Call
}

// SignOut is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockIdentitySession_Expecter) SignOut(ctx interface{}) *MockIdentitySession_SignOut_Call {
	return &MockIdentitySession_SignOut_Call{Call: _e.mock.On("SignOut", ctx)}
}

func (_c *MockIdentitySession_SignOut_Call) Run(run func(ctx context.Context)) *MockIdentitySession_SignOut_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockIdentitySession_SignOut_Call) Return(_a0 error) *MockIdentitySession_SignOut_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockIdentitySession_SignOut_Call) RunAndReturn(run func(context.Context) error) *MockIdentitySession_SignOut_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockIdentitySession creates a new instance of MockIdentitySession. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockIdentitySession(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIdentitySession {
	mock := &MockIdentitySession{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
