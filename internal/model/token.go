package model

// TokenManager issues and validates access tokens carrying an opaque user id.
type TokenManager interface {
	GenerateAccessToken(userID string) (string, error)
	ParseAccessToken(token string) (string, error)
}
