package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// TokenService is a mock type for the middleware.TokenService type.
type TokenService struct {
	mock.Mock
}

// GetUserID provides a mock function with given fields: ctx, token
func (_m *TokenService) GetUserID(ctx context.Context, token string) (string, error) {
	ret := _m.Called(ctx, token)

	return ret.String(0), ret.Error(1)
}

// NewTokenService creates a new instance of TokenService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *TokenService {
	m := &TokenService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
