package service

import (
	"context"

	"github.com/NapAndCommit/still-figuring-it-out/internal/apperror"
	"github.com/NapAndCommit/still-figuring-it-out/internal/logger"
	"github.com/NapAndCommit/still-figuring-it-out/internal/model"
	"github.com/NapAndCommit/still-figuring-it-out/internal/pattern"
)

// PatternAwareness computes pattern summaries from a user's history.
type PatternAwareness struct {
	reflections model.ReflectionStore
	lifeAreas   model.LifeAreaStore
	detector    *pattern.Detector
	logger      *logger.Logger
}

func NewPatternAwareness(
	reflections model.ReflectionStore,
	lifeAreas model.LifeAreaStore,
	detector *pattern.Detector,
	logger *logger.Logger,
) *PatternAwareness {
	return &PatternAwareness{
		reflections: reflections,
		lifeAreas:   lifeAreas,
		detector:    detector,
		logger:      logger,
	}
}

// Get reads the user's full reflection history and current life areas and
// returns the detected patterns. If either read fails nothing is returned.
func (s *PatternAwareness) Get(ctx context.Context, userID string) (model.PatternAwareness, error) {
	reflections, err := s.reflections.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Pattern service: failed to read reflections",
			"user_id", userID,
			"error", err.Error())
		return model.PatternAwareness{}, apperror.NewPatternsUnavailable(userID, err)
	}

	areas, err := s.lifeAreas.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Pattern service: failed to read life areas",
			"user_id", userID,
			"error", err.Error())
		return model.PatternAwareness{}, apperror.NewPatternsUnavailable(userID, err)
	}

	result := s.detector.Analyze(reflections, areas)

	s.logger.Debug("Pattern service: patterns computed",
		"user_id", userID,
		"reflections", len(reflections),
		"themes", len(result.ReflectionThemes),
		"uncertainties", len(result.PersistentUncertainties))

	return result, nil
}
