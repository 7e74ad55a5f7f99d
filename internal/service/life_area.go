package service

import (
	"context"
	"fmt"

	"github.com/NapAndCommit/still-figuring-it-out/internal/apperror"
	"github.com/NapAndCommit/still-figuring-it-out/internal/logger"
	"github.com/NapAndCommit/still-figuring-it-out/internal/model"
)

type LifeArea struct {
	store  model.LifeAreaStore
	logger *logger.Logger
}

func NewLifeArea(store model.LifeAreaStore, logger *logger.Logger) *LifeArea {
	return &LifeArea{
		store:  store,
		logger: logger,
	}
}

// Seed creates any default life area the user is missing. Areas that already
// exist are left as they are.
func (s *LifeArea) Seed(ctx context.Context, userID string) error {
	inserted, err := s.store.InsertMissing(ctx, userID, model.DefaultLifeAreas())
	if err != nil {
		return fmt.Errorf("failed to seed life areas: %w", err)
	}

	if inserted > 0 {
		s.logger.Info("Life area service: seeded default life areas",
			"user_id", userID,
			"inserted", inserted)
	}

	return nil
}

// List seeds the defaults and returns the user's life areas ordered by name.
// Seeding and read failures are logged; the caller gets whatever could be read.
func (s *LifeArea) List(ctx context.Context, userID string) []model.LifeArea {
	if err := s.Seed(ctx, userID); err != nil {
		s.logger.Error("Life area service: seeding failed",
			"user_id", userID,
			"error", err.Error())
	}

	areas, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Life area service: failed to list life areas",
			"user_id", userID,
			"error", err.Error())
		return []model.LifeArea{}
	}
	if areas == nil {
		return []model.LifeArea{}
	}

	return areas
}

// Save updates one of the user's life areas. An unknown confidence is stored as unclear.
func (s *LifeArea) Save(ctx context.Context, userID string, area model.LifeArea) error {
	area.Confidence = model.ParseConfidence(string(area.Confidence))

	if err := s.store.Update(ctx, userID, area); err != nil {
		s.logger.Error("Life area service: failed to save life area",
			"user_id", userID,
			"life_area_id", area.ID,
			"error", err.Error())
		return apperror.NewLifeAreaNotSaved(userID, area.ID, err)
	}

	return nil
}
