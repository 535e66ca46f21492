package service

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/rs/zerolog"

	"raider-registry-backend/internal/common/errors"
	"raider-registry-backend/internal/common/validation"
	"raider-registry-backend/internal/features/registration/models"
	"raider-registry-backend/internal/features/registration/repository"
)

type registrationService struct {
	repo   repository.ProfileRepository
	logger zerolog.Logger
}

func NewRegistrationService(repo repository.ProfileRepository, logger zerolog.Logger) RegistrationService {
	return &registrationService{
		repo:   repo,
		logger: logger,
	}
}

func (s *registrationService) Register(ctx context.Context, input models.RegisterInput) (*models.UserProfile, error) {
	req := normalize(input.RegisterRequest)

	if fields := validate(req); len(fields) > 0 {
		return nil, errors.NewFieldValidationError(fields)
	}

	if input.VerifiedTelegramUsername != "" &&
		!strings.EqualFold(input.VerifiedTelegramUsername, req.TelegramUsername) {
		return nil, errors.NewValidationError("telegramUsername", "does not match the Telegram account that opened the app")
	}

	// повторная проверка на случай обхода валидатора
	if req.TwitterID == "" || req.TelegramUsername == "" || req.WalletAddress == "" {
		return nil, errors.NewValidationError("request", "twitterId, telegramUsername and walletAddress are required")
	}

	exists, err := s.repo.ExistsAny(ctx, req.TwitterID, req.TelegramUsername, req.WalletAddress)
	if err != nil {
		return nil, errors.NewStorageError("exists_any", err)
	}
	if exists {
		return nil, errors.NewDuplicateIdentityError(nil)
	}

	profile, err := s.repo.Create(ctx, &models.UserProfile{
		WalletAddress:      req.WalletAddress,
		TwitterID:          req.TwitterID,
		TwitterUsername:    optional(req.TwitterUsername),
		TwitterDisplayName: optional(req.TwitterDisplayName),
		TelegramUsername:   req.TelegramUsername,
	})
	if err != nil {
		// проверка выше не защищает от гонки, уникальные индексы - последнее слово
		if stderrors.Is(err, repository.ErrDuplicate) {
			return nil, errors.NewDuplicateIdentityError(err)
		}
		return nil, errors.NewStorageError("create_profile", err)
	}

	s.logger.Info().
		Int64("profile_id", profile.ID).
		Str("twitter_id", profile.TwitterID).
		Msg("Profile registered")

	return profile, nil
}

func normalize(req models.RegisterRequest) models.RegisterRequest {
	return models.RegisterRequest{
		TwitterID:          strings.TrimSpace(req.TwitterID),
		TwitterUsername:    strings.TrimPrefix(strings.TrimSpace(req.TwitterUsername), "@"),
		TwitterDisplayName: strings.TrimSpace(req.TwitterDisplayName),
		TelegramUsername:   validation.NormalizeTelegramUsername(req.TelegramUsername),
		WalletAddress:      strings.TrimSpace(req.WalletAddress),
	}
}

// validate собирает ошибки по всем полям сразу
func validate(req models.RegisterRequest) map[string]string {
	fields := make(map[string]string)

	if err := validation.ValidateTwitterID(req.TwitterID); err != nil {
		fields["twitterId"] = err.Error()
	}
	if req.TwitterUsername != "" {
		if err := validation.ValidateTwitterUsername(req.TwitterUsername); err != nil {
			fields["twitterUsername"] = err.Error()
		}
	}
	if err := validation.ValidateTelegramUsername(req.TelegramUsername); err != nil {
		fields["telegramUsername"] = err.Error()
	}
	if err := validation.ValidateWalletAddress(req.WalletAddress); err != nil {
		fields["walletAddress"] = err.Error()
	}

	return fields
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
