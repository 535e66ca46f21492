package service

import (
	"context"

	"raider-registry-backend/internal/features/registration/models"
)

type RegistrationService interface {
	Register(ctx context.Context, input models.RegisterInput) (*models.UserProfile, error)
}
