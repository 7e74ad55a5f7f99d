package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/NapAndCommit/still-figuring-it-out/internal/model"
)

// ReflectionService is a mock type for the handler.ReflectionService type.
type ReflectionService struct {
	mock.Mock
}

// GetOrCreateCurrent provides a mock function with given fields: ctx, userID
func (_m *ReflectionService) GetOrCreateCurrent(ctx context.Context, userID string) (model.WeeklyReflection, error) {
	ret := _m.Called(ctx, userID)

	return ret.Get(0).(model.WeeklyReflection), ret.Error(1)
}

// FetchCurrent provides a mock function with given fields: ctx, userID
func (_m *ReflectionService) FetchCurrent(ctx context.Context, userID string) (model.WeeklyReflection, bool) {
	ret := _m.Called(ctx, userID)

	return ret.Get(0).(model.WeeklyReflection), ret.Bool(1)
}

// UpdateResponse provides a mock function with given fields: ctx, userID, reflectionID, response
func (_m *ReflectionService) UpdateResponse(ctx context.Context, userID string, reflectionID uuid.UUID, response *string) error {
	ret := _m.Called(ctx, userID, reflectionID, response)

	return ret.Error(0)
}

// ListAll provides a mock function with given fields: ctx, userID
func (_m *ReflectionService) ListAll(ctx context.Context, userID string) []model.WeeklyReflection {
	ret := _m.Called(ctx, userID)

	var r0 []model.WeeklyReflection
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.WeeklyReflection)
	}

	return r0
}

// Get provides a mock function with given fields: ctx, userID, reflectionID
func (_m *ReflectionService) Get(ctx context.Context, userID string, reflectionID uuid.UUID) (model.WeeklyReflection, error) {
	ret := _m.Called(ctx, userID, reflectionID)

	return ret.Get(0).(model.WeeklyReflection), ret.Error(1)
}

// TimeReference provides a mock function with given fields: reflection
func (_m *ReflectionService) TimeReference(reflection model.WeeklyReflection) string {
	ret := _m.Called(reflection)

	return ret.String(0)
}

// NewReflectionService creates a new instance of ReflectionService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewReflectionService(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReflectionService {
	m := &ReflectionService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// LifeAreaService is a mock type for the handler.LifeAreaService type.
type LifeAreaService struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx, userID
func (_m *LifeAreaService) List(ctx context.Context, userID string) []model.LifeArea {
	ret := _m.Called(ctx, userID)

	var r0 []model.LifeArea
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.LifeArea)
	}

	return r0
}

// Save provides a mock function with given fields: ctx, userID, area
func (_m *LifeAreaService) Save(ctx context.Context, userID string, area model.LifeArea) error {
	ret := _m.Called(ctx, userID, area)

	return ret.Error(0)
}

// NewLifeAreaService creates a new instance of LifeAreaService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewLifeAreaService(t interface {
	mock.TestingT
	Cleanup(func())
}) *LifeAreaService {
	m := &LifeAreaService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// PatternService is a mock type for the handler.PatternService type.
type PatternService struct {
	mock.Mock
}

// Get provides a mock function with given fields: ctx, userID
func (_m *PatternService) Get(ctx context.Context, userID string) (model.PatternAwareness, error) {
	ret := _m.Called(ctx, userID)

	return ret.Get(0).(model.PatternAwareness), ret.Error(1)
}

// NewPatternService creates a new instance of PatternService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewPatternService(t interface {
	mock.TestingT
	Cleanup(func())
}) *PatternService {
	m := &PatternService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// ExportService is a mock type for the handler.ExportService type.
type ExportService struct {
	mock.Mock
}

// Export provides a mock function with given fields: ctx, userID
func (_m *ExportService) Export(ctx context.Context, userID string) (string, error) {
	ret := _m.Called(ctx, userID)

	return ret.String(0), ret.Error(1)
}

// NewExportService creates a new instance of ExportService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewExportService(t interface {
	mock.TestingT
	Cleanup(func())
}) *ExportService {
	m := &ExportService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
