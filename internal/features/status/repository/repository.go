package repository

import (
	"context"

	"raider-registry-backend/internal/features/status/models"
)

type StatusRepository interface {
	Create(ctx context.Context, check *models.StatusCheck) error
	// List возвращает не больше limit записей, новые первыми
	List(ctx context.Context, limit int) ([]*models.StatusCheck, error)
}
