package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/NapAndCommit/still-figuring-it-out/internal/model"
)

// LifeAreaStore is a mock type for the model.LifeAreaStore type.
type LifeAreaStore struct {
	mock.Mock
}

// ListByUser provides a mock function with given fields: ctx, userID
func (_m *LifeAreaStore) ListByUser(ctx context.Context, userID string) ([]model.LifeArea, error) {
	ret := _m.Called(ctx, userID)

	var r0 []model.LifeArea
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.LifeArea)
	}

	return r0, ret.Error(1)
}

// InsertMissing provides a mock function with given fields: ctx, userID, areas
func (_m *LifeAreaStore) InsertMissing(ctx context.Context, userID string, areas []model.LifeArea) (int, error) {
	ret := _m.Called(ctx, userID, areas)

	return ret.Int(0), ret.Error(1)
}

// Update provides a mock function with given fields: ctx, userID, area
func (_m *LifeAreaStore) Update(ctx context.Context, userID string, area model.LifeArea) error {
	ret := _m.Called(ctx, userID, area)

	return ret.Error(0)
}

// NewLifeAreaStore creates a new instance of LifeAreaStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewLifeAreaStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *LifeAreaStore {
	m := &LifeAreaStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
