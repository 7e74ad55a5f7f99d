package model

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ReflectionStore defines persistence operations for weekly reflections.
// Every method is scoped by user id.
type ReflectionStore interface {
	GetByWeek(ctx context.Context, userID string, weekStart time.Time) (WeeklyReflection, error)
	GetByID(ctx context.Context, userID string, id uuid.UUID) (WeeklyReflection, error)
	Create(ctx context.Context, reflection WeeklyReflection) (WeeklyReflection, error)
	UpdateResponse(ctx context.Context, userID string, id uuid.UUID, response *string) error
	ListByUser(ctx context.Context, userID string) ([]WeeklyReflection, error)
}

// WeeklyReflection is a user's answer to the prompt of one Monday-aligned week.
// At most one exists per (UserID, WeekStartDate).
type WeeklyReflection struct {
	ID            uuid.UUID
	UserID        string
	Prompt        string
	Response      *string
	WeekStartDate time.Time
	CreatedAt     time.Time
}

// HasResponse reports whether the reflection has a non-blank response.
func (r WeeklyReflection) HasResponse() bool {
	return r.Response != nil && strings.TrimSpace(*r.Response) != ""
}
