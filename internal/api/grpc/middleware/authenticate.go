package middleware

import (
	"context"

	"google.golang.org/grpc/status"

	"github.com/NapAndCommit/still-figuring-it-out/internal/apperror"
	"github.com/NapAndCommit/still-figuring-it-out/internal/logger"
	"github.com/NapAndCommit/still-figuring-it-out/internal/model"
)

// TokenService resolves user ID from bearer tokens.
type TokenService interface {
	GetUserID(ctx context.Context, token string) (string, error)
}

// Authenticate validates bearer tokens and injects user ID into context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// AuthFunc parses Authorization header, validates token and returns a context with user ID.
func (m *Authenticate) AuthFunc(ctx context.Context) (context.Context, error) {
	tokenString := bearerToken(ctx)

	userID, ok := m.authenticateUser(ctx, tokenString)
	if !ok {
		notAuthenticated := apperror.NewNotAuthenticated()
		return nil, status.Error(notAuthenticated.GRPCCode, notAuthenticated.Message)
	}

	return m.contextManager.SetUserIDToContext(ctx, userID), nil
}

func (m *Authenticate) authenticateUser(ctx context.Context, tokenString string) (string, bool) {
	if tokenString == "" {
		m.logger.Debug("Authenticate: missing authorization token")
		return "", false
	}

	userID, err := m.tokenService.GetUserID(ctx, tokenString)
	if err != nil {
		m.logger.Debug("Authenticate: invalid authorization token", "error", err.Error())
		return "", false
	}

	if userID == "" {
		return "", false
	}

	return userID, true
}
