package handler

import (
	"strings"

	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/NapAndCommit/still-figuring-it-out/internal/calendar"
	"github.com/NapAndCommit/still-figuring-it-out/internal/model"
)

func optionalString(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

// normalizeResponse trims a submitted response; blank text clears it.
func normalizeResponse(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func currentReflectionFields(r model.WeeklyReflection) map[string]interface{} {
	return map[string]interface{}{
		"id":           r.ID.String(),
		"prompt":       r.Prompt,
		"response":     optionalString(r.Response),
		"has_response": r.HasResponse(),
		"week_key":     calendar.WeekKey(r.WeekStartDate),
	}
}

// historyReflectionFields carries the soft time reference instead of a date.
func historyReflectionFields(r model.WeeklyReflection, timeReference string) map[string]interface{} {
	return map[string]interface{}{
		"id":             r.ID.String(),
		"prompt":         r.Prompt,
		"response":       optionalString(r.Response),
		"has_response":   r.HasResponse(),
		"time_reference": timeReference,
	}
}

func lifeAreaFields(a model.LifeArea) map[string]interface{} {
	return map[string]interface{}{
		"id":               a.ID.String(),
		"name":             a.Name,
		"current_state":    a.CurrentState,
		"confidence":       string(a.Confidence),
		"confidence_label": a.Confidence.Label(),
		"top_question":     a.TopQuestion,
		"helper":           a.Helper,
	}
}

func patternAwarenessFields(p model.PatternAwareness) map[string]interface{} {
	themes := make([]interface{}, 0, len(p.ReflectionThemes))
	for _, t := range p.ReflectionThemes {
		themes = append(themes, map[string]interface{}{
			"text": t.Text,
			"type": string(t.Type),
		})
	}
	uncertainties := make([]interface{}, 0, len(p.PersistentUncertainties))
	for _, u := range p.PersistentUncertainties {
		uncertainties = append(uncertainties, map[string]interface{}{
			"life_area_id":   u.LifeAreaID.String(),
			"life_area_name": u.LifeAreaName,
		})
	}
	return map[string]interface{}{
		"reflection_themes":        themes,
		"persistent_uncertainties": uncertainties,
	}
}

func stringField(req *structpb.Struct, name string) string {
	return req.GetFields()[name].GetStringValue()
}

// optionalStringField returns nil when the field is missing, null or not a string.
func optionalStringField(req *structpb.Struct, name string) *string {
	v, ok := req.GetFields()[name]
	if !ok {
		return nil
	}
	s, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return nil
	}
	return &s.StringValue
}

func uuidField(req *structpb.Struct, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(stringField(req, name))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
