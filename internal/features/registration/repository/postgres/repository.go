package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"raider-registry-backend/internal/features/registration/models"
	"raider-registry-backend/internal/features/registration/repository"
	"raider-registry-backend/internal/platform/postgres"
)

const profileColumns = `id, wallet_address, twitter_id, twitter_username, twitter_display_name,
	telegram_username, created_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) repository.ProfileRepository {
	return &postgresRepository{pool: pool}
}

// ExistsAny проверяет, занят ли хотя бы один из идентификаторов
func (r *postgresRepository) ExistsAny(ctx context.Context, twitterID, telegramUsername, walletAddress string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM user_profiles
			WHERE twitter_id = $1 OR telegram_username = $2 OR wallet_address = $3
		)
	`

	var exists bool
	err := postgres.WithConn(ctx, r.pool, func(conn *pgxpool.Conn) error {
		return conn.QueryRow(ctx, query, twitterID, telegramUsername, walletAddress).Scan(&exists)
	})
	if err != nil {
		return false, fmt.Errorf("failed to check existing profiles: %w", err)
	}

	return exists, nil
}

// Create вставляет профиль и возвращает сохраненную строку
func (r *postgresRepository) Create(ctx context.Context, profile *models.UserProfile) (*models.UserProfile, error) {
	query := `
		INSERT INTO user_profiles (
			wallet_address, twitter_id, twitter_username, twitter_display_name,
			telegram_username, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + profileColumns

	var created *models.UserProfile
	err := postgres.WithConn(ctx, r.pool, func(conn *pgxpool.Conn) error {
		row := conn.QueryRow(ctx, query,
			profile.WalletAddress,
			profile.TwitterID,
			profile.TwitterUsername,
			profile.TwitterDisplayName,
			profile.TelegramUsername,
		)

		var err error
		created, err = scanProfile(row)
		return err
	})
	if err != nil {
		return nil, createError(err)
	}

	return created, nil
}

// createError: нарушение уникальности при вставке означает дубликат
func createError(err error) error {
	if postgres.IsUniqueViolation(err) {
		return fmt.Errorf("%w: %v", repository.ErrDuplicate, err)
	}
	return fmt.Errorf("failed to create profile: %w", err)
}

// ListAll возвращает все профили, новые первыми
func (r *postgresRepository) ListAll(ctx context.Context) ([]*models.UserProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM user_profiles ORDER BY created_at DESC, id DESC`

	var profiles []*models.UserProfile
	err := postgres.WithConn(ctx, r.pool, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			p, err := scanProfile(rows)
			if err != nil {
				return err
			}
			profiles = append(profiles, p)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	return profiles, nil
}

func scanProfile(row pgx.Row) (*models.UserProfile, error) {
	var p models.UserProfile
	err := row.Scan(
		&p.ID,
		&p.WalletAddress,
		&p.TwitterID,
		&p.TwitterUsername,
		&p.TwitterDisplayName,
		&p.TelegramUsername,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
