package repository

import (
	"context"
	"fmt"

	"mystore/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// sellerRepository implements the SellerRepository interface using PostgreSQL.
type sellerRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewSellerRepository creates a new PostgreSQL-backed seller repository.
func NewSellerRepository(pool *pgxpool.Pool, logger zerolog.Logger) SellerRepository {
	return &sellerRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "seller").Logger(),
	}
}

// Create inserts a new seller application in pending status.
func (r *sellerRepository) Create(ctx context.Context, seller model.Seller) error {
	query := `
		INSERT INTO sellers (full_name, email, store_name, store_description, password, status, created_at)
		VALUES ($1, $2, $3, $4, $5, 'pending', NOW())
	`

	_, err := r.pool.Exec(ctx, query,
		seller.FullName, seller.Email, seller.StoreName, seller.StoreDescription, seller.Password)
	if err != nil {
		r.logger.Error().Err(err).Str("email", seller.Email).Msg("failed to create seller")
		return fmt.Errorf("failed to create seller: %w", err)
	}

	return nil
}

// GetByEmail retrieves a seller by email.
func (r *sellerRepository) GetByEmail(ctx context.Context, email string) (*model.Seller, error) {
	query := `
		SELECT full_name, email, store_name, store_description, password, status, created_at
		FROM sellers
		WHERE email = $1
	`

	var s model.Seller
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&s.FullName, &s.Email, &s.StoreName, &s.StoreDescription, &s.Password, &s.Status, &s.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("email", email).Msg("failed to query seller")
		return nil, fmt.Errorf("failed to query seller: %w", err)
	}

	return &s, nil
}

// UpdateStatus moves a seller between pending, approved and rejected.
func (r *sellerRepository) UpdateStatus(ctx context.Context, email, status string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE sellers SET status = $1 WHERE email = $2`, status, email)
	if err != nil {
		r.logger.Error().Err(err).Str("email", email).Str("status", status).
			Msg("failed to update seller status")
		return false, fmt.Errorf("failed to update seller status: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// UpdatePassword replaces a seller's password hash.
func (r *sellerRepository) UpdatePassword(ctx context.Context, email, passwordHash string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE sellers SET password = $1 WHERE email = $2`, passwordHash, email)
	if err != nil {
		r.logger.Error().Err(err).Str("email", email).Msg("failed to update seller password")
		return false, fmt.Errorf("failed to update seller password: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
