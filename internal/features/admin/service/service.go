package service

import (
	"context"
	"crypto/subtle"

	"github.com/rs/zerolog"

	"raider-registry-backend/internal/common/errors"
	"raider-registry-backend/internal/features/registration/models"
)

type AdminService interface {
	ListAll(ctx context.Context, username, password string) ([]*models.UserProfile, error)
}

// ProfileLister - часть репозитория профилей, нужная админке
type ProfileLister interface {
	ListAll(ctx context.Context) ([]*models.UserProfile, error)
}

type adminService struct {
	profiles ProfileLister
	username string
	password string
	logger   zerolog.Logger
}

// NewAdminService создает сервис. Пустые учетные данные отключают листинг.
func NewAdminService(profiles ProfileLister, username, password string, logger zerolog.Logger) AdminService {
	return &adminService{
		profiles: profiles,
		username: username,
		password: password,
		logger:   logger,
	}
}

func (s *adminService) ListAll(ctx context.Context, username, password string) ([]*models.UserProfile, error) {
	if username == "" || password == "" {
		fields := make(map[string]string)
		if username == "" {
			fields["username"] = "username is required"
		}
		if password == "" {
			fields["password"] = "password is required"
		}
		return nil, errors.NewFieldValidationError(fields)
	}

	if !s.authorized(username, password) {
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	profiles, err := s.profiles.ListAll(ctx)
	if err != nil {
		return nil, errors.NewStorageError("list_profiles", err)
	}
	if profiles == nil {
		profiles = []*models.UserProfile{}
	}

	s.logger.Info().Int("count", len(profiles)).Msg("Admin listed profiles")

	return profiles, nil
}

// authorized сравнивает обе пары целиком, не раскрывая, какое поле неверно
func (s *adminService) authorized(username, password string) bool {
	if s.username == "" || s.password == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password))
	return userOK&passOK == 1
}
