package handler

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/NapAndCommit/still-figuring-it-out/internal/api/grpc/journalpb"
	"github.com/NapAndCommit/still-figuring-it-out/internal/apperror"
	"github.com/NapAndCommit/still-figuring-it-out/internal/logger"
	"github.com/NapAndCommit/still-figuring-it-out/internal/model"
)

// ReflectionService defines the weekly reflection lifecycle.
type ReflectionService interface {
	GetOrCreateCurrent(ctx context.Context, userID string) (model.WeeklyReflection, error)
	FetchCurrent(ctx context.Context, userID string) (model.WeeklyReflection, bool)
	UpdateResponse(ctx context.Context, userID string, reflectionID uuid.UUID, response *string) error
	ListAll(ctx context.Context, userID string) []model.WeeklyReflection
	Get(ctx context.Context, userID string, reflectionID uuid.UUID) (model.WeeklyReflection, error)
	TimeReference(reflection model.WeeklyReflection) string
}

// LifeAreaService defines life area operations.
type LifeAreaService interface {
	List(ctx context.Context, userID string) []model.LifeArea
	Save(ctx context.Context, userID string, area model.LifeArea) error
}

// PatternService computes pattern summaries.
type PatternService interface {
	Get(ctx context.Context, userID string) (model.PatternAwareness, error)
}

// ExportService writes journal exports.
type ExportService interface {
	Export(ctx context.Context, userID string) (string, error)
}

// Journal handles gRPC endpoints for the journal.
type Journal struct {
	journalpb.UnimplementedJournalServer
	reflections    ReflectionService
	lifeAreas      LifeAreaService
	patterns       PatternService
	exports        ExportService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewJournal creates a new Journal handler.
func NewJournal(
	reflections ReflectionService,
	lifeAreas LifeAreaService,
	patterns PatternService,
	exports ExportService,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Journal {
	return &Journal{
		reflections:    reflections,
		lifeAreas:      lifeAreas,
		patterns:       patterns,
		exports:        exports,
		contextManager: contextManager,
		logger:         logger,
	}
}

var _ journalpb.JournalServer = (*Journal)(nil)

// GetCurrentReflection returns this week's reflection, creating it on first access.
func (h *Journal) GetCurrentReflection(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	userID, err := h.extractUserIDFromContext(ctx)
	if err != nil {
		return nil, handleError(err)
	}

	reflection, err := h.reflections.GetOrCreateCurrent(ctx, userID)
	if err != nil {
		return nil, handleError(err)
	}

	return h.respond(map[string]interface{}{
		"reflection": currentReflectionFields(reflection),
	})
}

// GetCurrentReflectionIfExists returns this week's reflection or a null
// reflection. It never creates one.
func (h *Journal) GetCurrentReflectionIfExists(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	userID, err := h.extractUserIDFromContext(ctx)
	if err != nil {
		return nil, handleError(err)
	}

	reflection, ok := h.reflections.FetchCurrent(ctx, userID)
	if !ok {
		return h.respond(map[string]interface{}{"reflection": nil})
	}

	return h.respond(map[string]interface{}{
		"reflection": currentReflectionFields(reflection),
	})
}

// SaveReflectionResponse sets or clears the response of a reflection.
// A missing, null or blank response clears it.
func (h *Journal) SaveReflectionResponse(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	userID, err := h.extractUserIDFromContext(ctx)
	if err != nil {
		return nil, handleError(err)
	}

	reflectionID, ok := uuidField(req, "reflection_id")
	if !ok {
		return nil, handleError(apperror.NewInvalidArgument("update_reflection_response", "reflection_id is not a valid id"))
	}

	response := normalizeResponse(optionalStringField(req, "response"))

	h.logger.Debug("Journal handler: saving reflection response",
		"user_id", userID,
		"reflection_id", reflectionID,
		"clears", response == nil)

	if err := h.reflections.UpdateResponse(ctx, userID, reflectionID, response); err != nil {
		return nil, handleError(err)
	}

	return h.respond(map[string]interface{}{
		"reflection_id": reflectionID.String(),
		"has_response":  response != nil,
	})
}

// ListReflections returns the user's reflections, newest week first.
func (h *Journal) ListReflections(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	userID, err := h.extractUserIDFromContext(ctx)
	if err != nil {
		return nil, handleError(err)
	}

	reflections := h.reflections.ListAll(ctx, userID)

	items := make([]interface{}, 0, len(reflections))
	for _, r := range reflections {
		items = append(items, historyReflectionFields(r, h.reflections.TimeReference(r)))
	}

	h.logger.Debug("Journal handler: reflections listed",
		"user_id", userID,
		"count", len(items))

	return h.respond(map[string]interface{}{"reflections": items})
}

// GetReflection returns one of the user's reflections.
func (h *Journal) GetReflection(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	userID, err := h.extractUserIDFromContext(ctx)
	if err != nil {
		return nil, handleError(err)
	}

	reflectionID, ok := uuidField(req, "reflection_id")
	if !ok {
		return nil, handleError(apperror.NewInvalidArgument("get_reflection", "reflection_id is not a valid id"))
	}

	reflection, err := h.reflections.Get(ctx, userID, reflectionID)
	if err != nil {
		return nil, handleError(err)
	}

	return h.respond(map[string]interface{}{
		"reflection": historyReflectionFields(reflection, h.reflections.TimeReference(reflection)),
	})
}

// ListLifeAreas returns the user's life areas, seeding the defaults first.
func (h *Journal) ListLifeAreas(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	userID, err := h.extractUserIDFromContext(ctx)
	if err != nil {
		return nil, handleError(err)
	}

	areas := h.lifeAreas.List(ctx, userID)

	items := make([]interface{}, 0, len(areas))
	for _, a := range areas {
		items = append(items, lifeAreaFields(a))
	}

	return h.respond(map[string]interface{}{"life_areas": items})
}

// SaveLifeArea updates one of the user's life areas.
func (h *Journal) SaveLifeArea(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	userID, err := h.extractUserIDFromContext(ctx)
	if err != nil {
		return nil, handleError(err)
	}

	areaID, ok := uuidField(req, "id")
	if !ok {
		return nil, handleError(apperror.NewInvalidArgument("save_life_area", "id is not a valid id"))
	}
	name := stringField(req, "name")
	if name == "" {
		return nil, handleError(apperror.NewInvalidArgument("save_life_area", "name is required"))
	}

	area := model.LifeArea{
		ID:           areaID,
		UserID:       userID,
		Name:         name,
		CurrentState: stringField(req, "current_state"),
		Confidence:   model.Confidence(stringField(req, "confidence")),
		TopQuestion:  stringField(req, "top_question"),
		Helper:       stringField(req, "helper"),
	}

	if err := h.lifeAreas.Save(ctx, userID, area); err != nil {
		return nil, handleError(err)
	}

	return h.respond(map[string]interface{}{"id": areaID.String()})
}

// GetPatternAwareness returns recurring themes and areas of persistent uncertainty.
func (h *Journal) GetPatternAwareness(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	userID, err := h.extractUserIDFromContext(ctx)
	if err != nil {
		return nil, handleError(err)
	}

	patterns, err := h.patterns.Get(ctx, userID)
	if err != nil {
		return nil, handleError(err)
	}

	return h.respond(patternAwarenessFields(patterns))
}

// ExportJournal writes the user's journal to object storage and returns its key.
func (h *Journal) ExportJournal(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	userID, err := h.extractUserIDFromContext(ctx)
	if err != nil {
		return nil, handleError(err)
	}

	key, err := h.exports.Export(ctx, userID)
	if err != nil {
		return nil, handleError(err)
	}

	h.logger.Info("Journal handler: journal exported",
		"user_id", userID,
		"key", key)

	return h.respond(map[string]interface{}{"key": key})
}

func (h *Journal) extractUserIDFromContext(ctx context.Context) (string, error) {
	userID, ok := h.contextManager.GetUserIDFromContext(ctx)
	if !ok {
		return "", apperror.NewNotAuthenticated()
	}
	return userID, nil
}

func (h *Journal) respond(fields map[string]interface{}) (*structpb.Struct, error) {
	resp, err := structpb.NewStruct(fields)
	if err != nil {
		h.logger.Error("Journal handler: failed to encode response", "error", err.Error())
		return nil, handleError(fmt.Errorf("encode response: %w", err))
	}
	return resp, nil
}
