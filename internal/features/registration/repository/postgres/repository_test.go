package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"raider-registry-backend/internal/features/registration/repository"
)

func TestCreateError_UniqueViolationIsDuplicate(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "user_profiles_wallet_address_key"}

	// так ошибка выходит из WithConn после QueryRow
	err := createError(fmt.Errorf("scan profile: %w", pgErr))

	assert.True(t, errors.Is(err, repository.ErrDuplicate))
}

func TestCreateError_OtherErrorsAreNotDuplicate(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"not null violation", &pgconn.PgError{Code: "23502"}},
		{"connection error", errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := createError(fmt.Errorf("failed to acquire connection: %w", tt.err))

			assert.False(t, errors.Is(err, repository.ErrDuplicate))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
