package repository

import (
	"context"
	"fmt"

	"mystore/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// activityRepository implements the ActivityRepository interface using PostgreSQL.
type activityRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewActivityRepository creates a new PostgreSQL-backed activity repository.
func NewActivityRepository(pool *pgxpool.Pool, logger zerolog.Logger) ActivityRepository {
	return &activityRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "activity").Logger(),
	}
}

// Append records one product action for a seller.
func (r *activityRepository) Append(ctx context.Context, sellerEmail string, productID int64, action, productTitle string) error {
	query := `
		INSERT INTO seller_activity (seller_email, product_id, action, product_title, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`

	_, err := r.pool.Exec(ctx, query, sellerEmail, productID, action, productTitle)
	if err != nil {
		r.logger.Error().Err(err).
			Str("seller", sellerEmail).
			Str("action", action).
			Msg("failed to append activity")
		return fmt.Errorf("failed to append activity: %w", err)
	}

	return nil
}

// ListBySeller retrieves a seller's most recent activity, newest first.
func (r *activityRepository) ListBySeller(ctx context.Context, sellerEmail string, limit int) ([]model.ActivityRecord, error) {
	query := `
		SELECT id, product_id, action, product_title, created_at
		FROM seller_activity
		WHERE seller_email = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, sellerEmail, limit)
	if err != nil {
		r.logger.Error().Err(err).Str("seller", sellerEmail).Msg("failed to query activity")
		return nil, fmt.Errorf("failed to query activity: %w", err)
	}
	defer rows.Close()

	var records []model.ActivityRecord
	for rows.Next() {
		var rec model.ActivityRecord
		if err := rows.Scan(&rec.ID, &rec.ProductID, &rec.Action, &rec.ProductTitle, &rec.Timestamp); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan activity row")
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating activity rows")
		return nil, fmt.Errorf("error iterating activity: %w", err)
	}

	return records, nil
}
