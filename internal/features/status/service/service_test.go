package service

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raider-registry-backend/internal/common/errors"
	"raider-registry-backend/internal/features/status/models"
)

type fakeRepo struct {
	checks  []*models.StatusCheck
	err     error
	limited int
}

func (f *fakeRepo) Create(_ context.Context, check *models.StatusCheck) error {
	if f.err != nil {
		return f.err
	}
	f.checks = append([]*models.StatusCheck{check}, f.checks...)
	return nil
}

func (f *fakeRepo) List(_ context.Context, limit int) ([]*models.StatusCheck, error) {
	f.limited = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.checks, nil
}

func TestCreate(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewStatusService(repo)

	check, err := svc.Create(context.Background(), "  frontend ")
	require.NoError(t, err)
	assert.Equal(t, "frontend", check.ClientName)
	assert.False(t, check.Timestamp.IsZero())
	_, err = uuid.Parse(check.ID)
	assert.NoError(t, err)
	assert.Len(t, repo.checks, 1)
}

func TestCreate_EmptyClientName(t *testing.T) {
	repo := &fakeRepo{}
	_, err := NewStatusService(repo).Create(context.Background(), "   ")
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))
	assert.Empty(t, repo.checks)
}

func TestList(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewStatusService(repo)

	checks, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, checks)
	assert.Equal(t, MaxListed, repo.limited)
}

func TestStorageErrors(t *testing.T) {
	svc := NewStatusService(&fakeRepo{err: stderrors.New("db down")})

	_, err := svc.Create(context.Background(), "frontend")
	assert.True(t, errors.HasCode(err, errors.ErrCodeStorageUnavailable))

	_, err = svc.List(context.Background())
	assert.True(t, errors.HasCode(err, errors.ErrCodeStorageUnavailable))
}
