package service

import (
	"context"
	"fmt"

	"github.com/NapAndCommit/still-figuring-it-out/internal/logger"
	"github.com/NapAndCommit/still-figuring-it-out/internal/model"
)

// TokenService resolves the user behind an access token issued by the
// session service.
type TokenService struct {
	manager model.TokenManager
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, logger: logger}
}

// GetUserID returns the opaque user id carried by token.
func (s *TokenService) GetUserID(_ context.Context, token string) (string, error) {
	userID, err := s.manager.ParseAccessToken(token)
	if err != nil {
		s.logger.Debug("Token service: rejected access token", "error", err.Error())
		return "", fmt.Errorf("parse access token: %w", err)
	}
	if userID == "" {
		return "", fmt.Errorf("access token has no subject")
	}

	return userID, nil
}
