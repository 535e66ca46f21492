package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"raider-registry-backend/internal/common/errors"
	"raider-registry-backend/internal/common/validation"
	"raider-registry-backend/internal/features/status/models"
	"raider-registry-backend/internal/features/status/repository"
)

const MaxListed = 1000

type StatusService interface {
	Create(ctx context.Context, clientName string) (*models.StatusCheck, error)
	List(ctx context.Context) ([]*models.StatusCheck, error)
}

type statusService struct {
	repo repository.StatusRepository
	now  func() time.Time
}

func NewStatusService(repo repository.StatusRepository) StatusService {
	return &statusService{repo: repo, now: time.Now}
}

func (s *statusService) Create(ctx context.Context, clientName string) (*models.StatusCheck, error) {
	clientName = strings.TrimSpace(clientName)
	if err := validation.ValidateClientName(clientName); err != nil {
		return nil, errors.NewValidationError("clientName", err.Error())
	}

	check := &models.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  s.now().UTC(),
	}

	if err := s.repo.Create(ctx, check); err != nil {
		return nil, errors.NewStorageError("create_status_check", err)
	}

	return check, nil
}

func (s *statusService) List(ctx context.Context) ([]*models.StatusCheck, error) {
	checks, err := s.repo.List(ctx, MaxListed)
	if err != nil {
		return nil, errors.NewStorageError("list_status_checks", err)
	}
	if checks == nil {
		checks = []*models.StatusCheck{}
	}
	return checks, nil
}
