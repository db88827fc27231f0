package repository

import (
	"context"
	"fmt"

	"mystore/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// userRepository implements the UserRepository interface using PostgreSQL.
type userRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewUserRepository creates a new PostgreSQL-backed user repository.
func NewUserRepository(pool *pgxpool.Pool, logger zerolog.Logger) UserRepository {
	return &userRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "user").Logger(),
	}
}

// Create inserts a new shopper account.
func (r *userRepository) Create(ctx context.Context, user model.User) error {
	query := `
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
	`

	_, err := r.pool.Exec(ctx, query, user.Name, user.Email, user.Password)
	if err != nil {
		r.logger.Error().Err(err).Str("email", user.Email).Msg("failed to create user")
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByEmail retrieves a shopper by email.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
		SELECT name, email, password
		FROM users
		WHERE email = $1
	`

	var u model.User
	err := r.pool.QueryRow(ctx, query, email).Scan(&u.Name, &u.Email, &u.Password)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("email", email).Msg("failed to query user")
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &u, nil
}

// UpdatePassword replaces a shopper's password hash.
func (r *userRepository) UpdatePassword(ctx context.Context, email, passwordHash string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE users SET password = $1 WHERE email = $2`, passwordHash, email)
	if err != nil {
		r.logger.Error().Err(err).Str("email", email).Msg("failed to update user password")
		return false, fmt.Errorf("failed to update user password: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
