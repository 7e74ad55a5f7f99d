package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
)

func TestConstructors(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	reflectionID := uuid.New()

	tests := []struct {
		name     string
		err      *Error
		wantCode codes.Code
		wantOp   string
	}{
		{name: "not authenticated", err: NewNotAuthenticated(), wantCode: codes.Unauthenticated, wantOp: "authenticate"},
		{name: "invalid argument", err: NewInvalidArgument("get_reflection", "bad id"), wantCode: codes.InvalidArgument, wantOp: "get_reflection"},
		{name: "reflection not created", err: NewReflectionNotCreated("u", cause), wantCode: codes.Unavailable, wantOp: "get_or_create_reflection"},
		{name: "reflection not saved", err: NewReflectionNotSaved("u", reflectionID, cause), wantCode: codes.Unavailable, wantOp: "update_reflection_response"},
		{name: "reflection not found", err: NewReflectionNotFound("u", reflectionID), wantCode: codes.NotFound, wantOp: "get_reflection"},
		{name: "reflection unavailable", err: NewReflectionUnavailable("u", reflectionID, cause), wantCode: codes.Unavailable, wantOp: "get_reflection"},
		{name: "life area not saved", err: NewLifeAreaNotSaved("u", uuid.New(), cause), wantCode: codes.Unavailable, wantOp: "save_life_area"},
		{name: "patterns unavailable", err: NewPatternsUnavailable("u", cause), wantCode: codes.Unavailable, wantOp: "pattern_awareness"},
		{name: "export failed", err: NewExportFailed("u", cause), wantCode: codes.Unavailable, wantOp: "export_journal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantCode, tt.err.GRPCCode)
			assert.Equal(t, tt.wantOp, tt.err.Op)
			assert.NotEmpty(t, tt.err.Message)
			assert.NotContains(t, tt.err.Message, "connection reset")
		})
	}
}

func TestError_ScopeAndUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	reflectionID := uuid.New()
	err := NewReflectionNotSaved("user-7", reflectionID, cause)

	assert.Equal(t, "user-7", err.UserID)
	assert.Equal(t, reflectionID, err.ReflectionID)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "boom")
}

func TestAs(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("handler: %w", NewNotAuthenticated())
	got, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, codes.Unauthenticated, got.GRPCCode)

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}
