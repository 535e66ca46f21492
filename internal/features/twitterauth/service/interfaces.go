package service

import (
	"context"

	"raider-registry-backend/internal/features/twitterauth/models"
	"raider-registry-backend/internal/features/twitterauth/oauth"
)

type TwitterAuthService interface {
	// BeginHandshake запрашивает временный токен и возвращает URL авторизации
	BeginHandshake(ctx context.Context) (string, error)
	// CompleteHandshake обменивает токен и verifier на профиль пользователя
	CompleteHandshake(ctx context.Context, requestToken, verifier string) (*models.ProfileIdentity, error)
	// Deny удаляет рукопожатие, от которого пользователь отказался
	Deny(ctx context.Context, requestToken string) error
}

// TokenExchanger - сетевые шаги OAuth 1.0a, реализуется oauth.Client
type TokenExchanger interface {
	Configured() bool
	RequestToken(ctx context.Context, callbackURL string) (oauth.TokenPair, error)
	AuthorizationURL(requestToken string) string
	AccessToken(ctx context.Context, request oauth.TokenPair, verifier string) (oauth.TokenPair, error)
	VerifyCredentials(ctx context.Context, access oauth.TokenPair) (*models.ProfileIdentity, error)
}
