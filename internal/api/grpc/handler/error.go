package handler

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/NapAndCommit/still-figuring-it-out/internal/apperror"
	"github.com/NapAndCommit/still-figuring-it-out/internal/model"
)

const (
	msgNotFound = "That isn't here."
	msgInternal = "Something went wrong on our side. You can try again in a moment."
)

func handleError(err error) error {
	if appErr, ok := apperror.As(err); ok {
		return status.Error(appErr.GRPCCode, appErr.Message)
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return status.Error(codes.NotFound, msgNotFound)
	default:
		return status.Error(codes.Internal, msgInternal)
	}
}
