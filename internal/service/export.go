package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/NapAndCommit/still-figuring-it-out/internal/apperror"
	"github.com/NapAndCommit/still-figuring-it-out/internal/calendar"
	"github.com/NapAndCommit/still-figuring-it-out/internal/logger"
	"github.com/NapAndCommit/still-figuring-it-out/internal/model"
)

// Export writes a user's journal to object storage as a JSON document.
type Export struct {
	reflections model.ReflectionStore
	lifeAreas   model.LifeAreaStore
	storage     model.Storage
	clock       Clock
	logger      *logger.Logger
}

func NewExport(
	reflections model.ReflectionStore,
	lifeAreas model.LifeAreaStore,
	storage model.Storage,
	clock Clock,
	logger *logger.Logger,
) *Export {
	return &Export{
		reflections: reflections,
		lifeAreas:   lifeAreas,
		storage:     storage,
		clock:       clock,
		logger:      logger,
	}
}

type exportDocument struct {
	ExportedAt  time.Time            `json:"exported_at"`
	Reflections []exportedReflection `json:"reflections"`
	LifeAreas   []exportedLifeArea   `json:"life_areas"`
}

type exportedReflection struct {
	ID            string  `json:"id"`
	Prompt        string  `json:"prompt"`
	Response      *string `json:"response"`
	WeekStartDate string  `json:"week_start_date"`
	CreatedAt     string  `json:"created_at"`
}

type exportedLifeArea struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CurrentState string `json:"current_state"`
	Confidence   string `json:"confidence"`
	TopQuestion  string `json:"top_question"`
}

// Export uploads the user's reflections and life areas and returns the object key.
// Nothing is uploaded unless both reads succeed.
func (s *Export) Export(ctx context.Context, userID string) (string, error) {
	reflections, err := s.reflections.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Export service: failed to read reflections",
			"user_id", userID,
			"error", err.Error())
		return "", apperror.NewExportFailed(userID, err)
	}

	areas, err := s.lifeAreas.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Export service: failed to read life areas",
			"user_id", userID,
			"error", err.Error())
		return "", apperror.NewExportFailed(userID, err)
	}

	doc := exportDocument{
		ExportedAt:  s.clock().UTC(),
		Reflections: make([]exportedReflection, 0, len(reflections)),
		LifeAreas:   make([]exportedLifeArea, 0, len(areas)),
	}
	for _, r := range reflections {
		doc.Reflections = append(doc.Reflections, exportedReflection{
			ID:            r.ID.String(),
			Prompt:        r.Prompt,
			Response:      r.Response,
			WeekStartDate: r.WeekStartDate.Format(calendar.KeyFormat),
			CreatedAt:     r.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	for _, a := range areas {
		doc.LifeAreas = append(doc.LifeAreas, exportedLifeArea{
			ID:           a.ID.String(),
			Name:         a.Name,
			CurrentState: a.CurrentState,
			Confidence:   string(a.Confidence),
			TopQuestion:  a.TopQuestion,
		})
	}

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", apperror.NewExportFailed(userID, fmt.Errorf("failed to marshal export: %w", err))
	}

	key := exportKey(userID)
	if err := s.storage.Upload(ctx, key, bytes.NewReader(payload)); err != nil {
		s.logger.Error("Export service: failed to upload export",
			"user_id", userID,
			"key", key,
			"error", err.Error())
		return "", apperror.NewExportFailed(userID, err)
	}

	s.logger.Info("Export service: journal exported",
		"user_id", userID,
		"key", key,
		"reflections", len(doc.Reflections),
		"bytes", len(payload))

	return key, nil
}

func exportKey(userID string) string {
	return fmt.Sprintf("user-%s/exports/%s.json", url.PathEscape(userID), uuid.NewString())
}
