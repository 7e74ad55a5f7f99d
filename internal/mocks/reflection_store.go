package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/NapAndCommit/still-figuring-it-out/internal/model"
)

// ReflectionStore is a mock type for the model.ReflectionStore type.
type ReflectionStore struct {
	mock.Mock
}

// GetByWeek provides a mock function with given fields: ctx, userID, weekStart
func (_m *ReflectionStore) GetByWeek(ctx context.Context, userID string, weekStart time.Time) (model.WeeklyReflection, error) {
	ret := _m.Called(ctx, userID, weekStart)

	if rf, ok := ret.Get(0).(func(context.Context, string, time.Time) (model.WeeklyReflection, error)); ok {
		return rf(ctx, userID, weekStart)
	}

	return ret.Get(0).(model.WeeklyReflection), ret.Error(1)
}

// GetByID provides a mock function with given fields: ctx, userID, id
func (_m *ReflectionStore) GetByID(ctx context.Context, userID string, id uuid.UUID) (model.WeeklyReflection, error) {
	ret := _m.Called(ctx, userID, id)

	return ret.Get(0).(model.WeeklyReflection), ret.Error(1)
}

// Create provides a mock function with given fields: ctx, reflection
func (_m *ReflectionStore) Create(ctx context.Context, reflection model.WeeklyReflection) (model.WeeklyReflection, error) {
	ret := _m.Called(ctx, reflection)

	if rf, ok := ret.Get(0).(func(context.Context, model.WeeklyReflection) (model.WeeklyReflection, error)); ok {
		return rf(ctx, reflection)
	}

	return ret.Get(0).(model.WeeklyReflection), ret.Error(1)
}

// UpdateResponse provides a mock function with given fields: ctx, userID, id, response
func (_m *ReflectionStore) UpdateResponse(ctx context.Context, userID string, id uuid.UUID, response *string) error {
	ret := _m.Called(ctx, userID, id, response)

	return ret.Error(0)
}

// ListByUser provides a mock function with given fields: ctx, userID
func (_m *ReflectionStore) ListByUser(ctx context.Context, userID string) ([]model.WeeklyReflection, error) {
	ret := _m.Called(ctx, userID)

	var r0 []model.WeeklyReflection
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.WeeklyReflection)
	}

	return r0, ret.Error(1)
}

// NewReflectionStore creates a new instance of ReflectionStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewReflectionStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReflectionStore {
	m := &ReflectionStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
