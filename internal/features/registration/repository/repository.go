package repository

import (
	"context"
	"errors"

	"raider-registry-backend/internal/features/registration/models"
)

// ErrDuplicate возвращается, если вставка нарушила одно из уникальных ограничений
var ErrDuplicate = errors.New("registration conflicts with an existing profile")

type ProfileRepository interface {
	// ExistsAny проверяет совпадение хотя бы одного из трех идентификаторов
	ExistsAny(ctx context.Context, twitterID, telegramUsername, walletAddress string) (bool, error)
	Create(ctx context.Context, profile *models.UserProfile) (*models.UserProfile, error)
	// ListAll возвращает профили, новые первыми
	ListAll(ctx context.Context) ([]*models.UserProfile, error)
}
