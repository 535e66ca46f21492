package service

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"raider-registry-backend/internal/common/errors"
	"raider-registry-backend/internal/features/twitterauth/models"
	"raider-registry-backend/internal/features/twitterauth/oauth"
	"raider-registry-backend/internal/features/twitterauth/repository"
)

const (
	stageBegin    = "begin"
	stageComplete = "complete"
	stageDeny     = "deny"
)

type twitterAuthService struct {
	client      TokenExchanger
	store       repository.HandshakeStore
	callbackURL string
	logger      zerolog.Logger
	handshakes  *prometheus.CounterVec
}

// NewTwitterAuthService создает сервис рукопожатия. reg может быть nil.
func NewTwitterAuthService(
	client TokenExchanger,
	store repository.HandshakeStore,
	callbackURL string,
	logger zerolog.Logger,
	reg prometheus.Registerer,
) TwitterAuthService {
	handshakes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "raider_registry",
		Subsystem: "twitter_auth",
		Name:      "handshakes_total",
		Help:      "OAuth handshakes by stage and outcome.",
	}, []string{"stage", "outcome"})
	if reg != nil {
		reg.MustRegister(handshakes)
	}

	return &twitterAuthService{
		client:      client,
		store:       store,
		callbackURL: callbackURL,
		logger:      logger,
		handshakes:  handshakes,
	}
}

func (s *twitterAuthService) BeginHandshake(ctx context.Context) (string, error) {
	if !s.client.Configured() {
		s.observe(stageBegin, errors.ErrCodeProviderNotConfigured)
		return "", errors.New(errors.ErrCodeProviderNotConfigured, "Twitter authentication is not configured")
	}

	request, err := s.client.RequestToken(ctx, s.callbackURL)
	if err != nil {
		s.observeErr(stageBegin, err)
		return "", err
	}

	if err := s.store.Save(ctx, request.Token, request.Secret); err != nil {
		s.observe(stageBegin, errors.ErrCodeStorageUnavailable)
		return "", errors.NewStorageError("save_handshake", err)
	}

	s.observe(stageBegin, "")
	s.logger.Debug().Msg("Handshake started")

	return s.client.AuthorizationURL(request.Token), nil
}

func (s *twitterAuthService) CompleteHandshake(ctx context.Context, requestToken, verifier string) (*models.ProfileIdentity, error) {
	// запись удаляется до обмена, повторный колбэк с тем же токеном всегда отклоняется
	secret, ok, err := s.store.Take(ctx, requestToken)
	if err != nil {
		s.observe(stageComplete, errors.ErrCodeStorageUnavailable)
		return nil, errors.NewStorageError("take_handshake", err)
	}
	if !ok {
		s.observe(stageComplete, errors.ErrCodeUnknownOrExpiredToken)
		return nil, errors.New(errors.ErrCodeUnknownOrExpiredToken, "Unknown or expired request token")
	}

	access, err := s.client.AccessToken(ctx, oauth.TokenPair{Token: requestToken, Secret: secret}, verifier)
	if err != nil {
		s.observeErr(stageComplete, err)
		return nil, err
	}

	identity, err := s.client.VerifyCredentials(ctx, access)
	if err != nil {
		s.observeErr(stageComplete, err)
		return nil, err
	}

	s.observe(stageComplete, "")
	s.logger.Info().
		Str("twitter_id", identity.ID).
		Str("twitter_username", identity.Username).
		Msg("Handshake completed")

	return identity, nil
}

func (s *twitterAuthService) Deny(ctx context.Context, requestToken string) error {
	if _, _, err := s.store.Take(ctx, requestToken); err != nil {
		s.observe(stageDeny, errors.ErrCodeStorageUnavailable)
		return errors.NewStorageError("take_handshake", err)
	}
	s.observe(stageDeny, errors.ErrCodeAccessDenied)
	return nil
}

func (s *twitterAuthService) observeErr(stage string, err error) {
	code := errors.ErrCodeInternal
	if appErr, ok := errors.AsAppError(err); ok {
		code = appErr.Code
	}
	s.observe(stage, code)
}

func (s *twitterAuthService) observe(stage string, code errors.ErrorCode) {
	outcome := "ok"
	if code != "" {
		outcome = string(code)
	}
	s.handshakes.WithLabelValues(stage, outcome).Inc()
}
