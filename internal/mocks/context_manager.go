package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// ContextManager is a mock type for the model.ContextManager type.
type ContextManager struct {
	mock.Mock
}

// SetUserIDToContext provides a mock function with given fields: ctx, userID
func (_m *ContextManager) SetUserIDToContext(ctx context.Context, userID string) context.Context {
	ret := _m.Called(ctx, userID)

	if rf, ok := ret.Get(0).(func(context.Context, string) context.Context); ok {
		return rf(ctx, userID)
	}

	return ret.Get(0).(context.Context)
}

// GetUserIDFromContext provides a mock function with given fields: ctx
func (_m *ContextManager) GetUserIDFromContext(ctx context.Context) (string, bool) {
	ret := _m.Called(ctx)

	return ret.String(0), ret.Bool(1)
}

// NewContextManager creates a new instance of ContextManager. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewContextManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *ContextManager {
	m := &ContextManager{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
