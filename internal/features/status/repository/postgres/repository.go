package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"raider-registry-backend/internal/features/status/models"
	"raider-registry-backend/internal/features/status/repository"
	"raider-registry-backend/internal/platform/postgres"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) repository.StatusRepository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, check *models.StatusCheck) error {
	query := `INSERT INTO status_checks (id, client_name, timestamp) VALUES ($1, $2, $3)`

	err := postgres.WithConn(ctx, r.pool, func(conn *pgxpool.Conn) error {
		_, err := conn.Exec(ctx, query, check.ID, check.ClientName, check.Timestamp)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to create status check: %w", err)
	}

	return nil
}

func (r *postgresRepository) List(ctx context.Context, limit int) ([]*models.StatusCheck, error) {
	query := `
		SELECT id::text, client_name, timestamp
		FROM status_checks
		ORDER BY timestamp DESC
		LIMIT $1
	`

	var checks []*models.StatusCheck
	err := postgres.WithConn(ctx, r.pool, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, query, limit)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var c models.StatusCheck
			if err := rows.Scan(&c.ID, &c.ClientName, &c.Timestamp); err != nil {
				return err
			}
			checks = append(checks, &c)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list status checks: %w", err)
	}

	return checks, nil
}
