package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/NapAndCommit/still-figuring-it-out/internal/apperror"
	"github.com/NapAndCommit/still-figuring-it-out/internal/calendar"
	"github.com/NapAndCommit/still-figuring-it-out/internal/logger"
	"github.com/NapAndCommit/still-figuring-it-out/internal/model"
	"github.com/NapAndCommit/still-figuring-it-out/internal/prompt"
)

// Reflection manages the weekly reflection of each user.
type Reflection struct {
	store    model.ReflectionStore
	rotation *prompt.Rotation
	clock    Clock
	logger   *logger.Logger
}

func NewReflection(
	store model.ReflectionStore,
	rotation *prompt.Rotation,
	clock Clock,
	logger *logger.Logger,
) *Reflection {
	return &Reflection{
		store:    store,
		rotation: rotation,
		clock:    clock,
		logger:   logger,
	}
}

// insertOutcome classifies the result of inserting a reflection.
type insertOutcome int

const (
	insertOK insertOutcome = iota
	insertConflict
	insertFatal
)

func classifyInsert(err error) insertOutcome {
	switch {
	case err == nil:
		return insertOK
	case errors.Is(err, model.ErrConflict):
		return insertConflict
	default:
		return insertFatal
	}
}

// GetOrCreateCurrent returns the reflection for the current week, creating it
// with the week's prompt if the user has none yet.
func (s *Reflection) GetOrCreateCurrent(ctx context.Context, userID string) (model.WeeklyReflection, error) {
	weekStart := calendar.WeekStart(s.clock())

	existing, err := s.store.GetByWeek(ctx, userID, weekStart)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		s.logger.Error("Reflection service: failed to get current reflection",
			"user_id", userID,
			"week_start", weekStart.Format(calendar.KeyFormat),
			"error", err.Error())
		return model.WeeklyReflection{}, apperror.NewReflectionNotCreated(userID, err)
	}

	created, err := s.store.Create(ctx, model.WeeklyReflection{
		ID:            uuid.New(),
		UserID:        userID,
		Prompt:        s.rotation.ForWeek(weekStart),
		Response:      nil,
		WeekStartDate: weekStart,
	})

	switch classifyInsert(err) {
	case insertOK:
		s.logger.Info("Reflection service: created reflection for week",
			"user_id", userID,
			"reflection_id", created.ID,
			"week_start", weekStart.Format(calendar.KeyFormat))
		return created, nil

	case insertConflict:
		// Another request created this week's row first; there is exactly one retry.
		s.logger.Debug("Reflection service: reflection created concurrently, fetching it",
			"user_id", userID,
			"week_start", weekStart.Format(calendar.KeyFormat))
		existing, err := s.store.GetByWeek(ctx, userID, weekStart)
		if err != nil {
			s.logger.Error("Reflection service: failed to fetch reflection after conflict",
				"user_id", userID,
				"error", err.Error())
			return model.WeeklyReflection{}, apperror.NewReflectionNotCreated(userID, fmt.Errorf("refetch after conflict: %w", err))
		}
		return existing, nil

	default:
		s.logger.Error("Reflection service: failed to create reflection",
			"user_id", userID,
			"week_start", weekStart.Format(calendar.KeyFormat),
			"error", err.Error())
		return model.WeeklyReflection{}, apperror.NewReflectionNotCreated(userID, err)
	}
}

// FetchCurrent returns the current week's reflection if it exists. A failed
// read is logged and reported as not found.
func (s *Reflection) FetchCurrent(ctx context.Context, userID string) (model.WeeklyReflection, bool) {
	weekStart := calendar.WeekStart(s.clock())

	reflection, err := s.store.GetByWeek(ctx, userID, weekStart)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			s.logger.Error("Reflection service: failed to fetch current reflection",
				"user_id", userID,
				"week_start", weekStart.Format(calendar.KeyFormat),
				"error", err.Error())
		}
		return model.WeeklyReflection{}, false
	}

	return reflection, true
}

// UpdateResponse sets or clears the response of one of the user's reflections.
// The response is stored as given.
func (s *Reflection) UpdateResponse(ctx context.Context, userID string, reflectionID uuid.UUID, response *string) error {
	err := s.store.UpdateResponse(ctx, userID, reflectionID, response)
	if err != nil {
		s.logger.Error("Reflection service: failed to update response",
			"user_id", userID,
			"reflection_id", reflectionID,
			"error", err.Error())
		return apperror.NewReflectionNotSaved(userID, reflectionID, err)
	}

	return nil
}

// ListAll returns the user's reflections, newest week first. A failed read
// is logged and yields an empty list.
func (s *Reflection) ListAll(ctx context.Context, userID string) []model.WeeklyReflection {
	reflections, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Reflection service: failed to list reflections",
			"user_id", userID,
			"error", err.Error())
		return []model.WeeklyReflection{}
	}
	if reflections == nil {
		return []model.WeeklyReflection{}
	}

	return reflections
}

// Get returns one of the user's reflections.
func (s *Reflection) Get(ctx context.Context, userID string, reflectionID uuid.UUID) (model.WeeklyReflection, error) {
	reflection, err := s.store.GetByID(ctx, userID, reflectionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.WeeklyReflection{}, apperror.NewReflectionNotFound(userID, reflectionID)
		}
		s.logger.Error("Reflection service: failed to get reflection",
			"user_id", userID,
			"reflection_id", reflectionID,
			"error", err.Error())
		return model.WeeklyReflection{}, apperror.NewReflectionUnavailable(userID, reflectionID, err)
	}

	return reflection, nil
}

// TimeReference returns the soft phrase for a reflection's week.
func (s *Reflection) TimeReference(reflection model.WeeklyReflection) string {
	return calendar.SoftTimeReference(reflection.WeekStartDate, s.clock())
}
