package repository

import (
	"context"
	"fmt"

	"mystore/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// contactRepository implements the ContactRepository interface using PostgreSQL.
type contactRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewContactRepository creates a new PostgreSQL-backed contact repository.
func NewContactRepository(pool *pgxpool.Pool, logger zerolog.Logger) ContactRepository {
	return &contactRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "contact").Logger(),
	}
}

// Create stores a contact form submission.
func (r *contactRepository) Create(ctx context.Context, req model.ContactRequest) (int64, error) {
	query := `
		INSERT INTO contact_messages (name, email, subject, message, status, created_at)
		VALUES ($1, $2, $3, $4, 'new', NOW())
		RETURNING id
	`

	var id int64
	err := r.pool.QueryRow(ctx, query, req.Name, req.Email, req.Subject, req.Message).Scan(&id)
	if err != nil {
		r.logger.Error().Err(err).Str("email", req.Email).Msg("failed to store contact message")
		return 0, fmt.Errorf("failed to store contact message: %w", err)
	}

	return id, nil
}

// List retrieves all stored submissions, newest first.
func (r *contactRepository) List(ctx context.Context) ([]model.ContactMessage, error) {
	query := `
		SELECT id, name, email, subject, message, status, created_at
		FROM contact_messages
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query contact messages")
		return nil, fmt.Errorf("failed to query contact messages: %w", err)
	}
	defer rows.Close()

	var messages []model.ContactMessage
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Status, &m.CreatedAt); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan contact message row")
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating contact message rows")
		return nil, fmt.Errorf("error iterating contact messages: %w", err)
	}

	return messages, nil
}
