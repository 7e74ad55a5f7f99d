// Package apperror defines the structured failures returned across the service boundary.
// Messages are safe to show to end users; technical detail stays in logs.
package apperror

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
)

const (
	msgNotSaved   = "That didn't save yet. You can try again when you're ready."
	msgNotLoaded  = "That couldn't be loaded right now. You can try again in a moment."
	msgNotFound   = "That reflection isn't here."
	msgSignedOut  = "Please sign in again to continue."
	msgBadRequest = "Something about that request didn't look right."
)

// Error is a structured failure. Op names the operation; UserID and
// ReflectionID record the scope that was used for the lookup.
type Error struct {
	GRPCCode     codes.Code
	Message      string
	Op           string
	UserID       string
	ReflectionID uuid.UUID
	Err          error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// As returns the *Error in err's chain, if any.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func NewNotAuthenticated() *Error {
	return &Error{GRPCCode: codes.Unauthenticated, Message: msgSignedOut, Op: "authenticate"}
}

func NewInvalidArgument(op, detail string) *Error {
	return &Error{GRPCCode: codes.InvalidArgument, Message: msgBadRequest, Op: op, Err: errors.New(detail)}
}

func NewReflectionNotCreated(userID string, err error) *Error {
	return &Error{GRPCCode: codes.Unavailable, Message: msgNotLoaded, Op: "get_or_create_reflection", UserID: userID, Err: err}
}

func NewReflectionNotSaved(userID string, reflectionID uuid.UUID, err error) *Error {
	return &Error{GRPCCode: codes.Unavailable, Message: msgNotSaved, Op: "update_reflection_response", UserID: userID, ReflectionID: reflectionID, Err: err}
}

func NewReflectionNotFound(userID string, reflectionID uuid.UUID) *Error {
	return &Error{GRPCCode: codes.NotFound, Message: msgNotFound, Op: "get_reflection", UserID: userID, ReflectionID: reflectionID}
}

func NewReflectionUnavailable(userID string, reflectionID uuid.UUID, err error) *Error {
	return &Error{GRPCCode: codes.Unavailable, Message: msgNotLoaded, Op: "get_reflection", UserID: userID, ReflectionID: reflectionID, Err: err}
}

func NewLifeAreaNotSaved(userID string, lifeAreaID uuid.UUID, err error) *Error {
	return &Error{GRPCCode: codes.Unavailable, Message: msgNotSaved, Op: "save_life_area", UserID: userID, Err: fmt.Errorf("life area %s: %w", lifeAreaID, err)}
}

func NewPatternsUnavailable(userID string, err error) *Error {
	return &Error{GRPCCode: codes.Unavailable, Message: msgNotLoaded, Op: "pattern_awareness", UserID: userID, Err: err}
}

func NewExportFailed(userID string, err error) *Error {
	return &Error{GRPCCode: codes.Unavailable, Message: msgNotSaved, Op: "export_journal", UserID: userID, Err: err}
}
