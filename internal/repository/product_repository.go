package repository

import (
	"context"
	"fmt"

	"mystore/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

const productColumns = `id, title, price, description, category, image, seller_email, seller_name, status, created_at`

func scanProduct(row pgx.Row) (model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.Title, &p.Price, &p.Description, &p.Category,
		&p.Image, &p.SellerID, &p.SellerName, &p.Status, &p.CreatedAt)
	return p, err
}

func (r *productRepository) queryProducts(ctx context.Context, query string, args ...any) ([]model.Product, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetPublished retrieves all published products for the shopper catalog.
func (r *productRepository) GetPublished(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE status = 'published'
		ORDER BY id
	`
	return r.queryProducts(ctx, query)
}

// GetByID retrieves a single product by its ID regardless of status.
func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1
	`

	p, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int64("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &p, nil
}

// GetBySeller retrieves all products owned by a seller, drafts included.
func (r *productRepository) GetBySeller(ctx context.Context, sellerEmail string) ([]model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE seller_email = $1
		ORDER BY created_at DESC, id DESC
	`
	return r.queryProducts(ctx, query, sellerEmail)
}

// Create inserts a new product in draft status and returns its ID.
func (r *productRepository) Create(ctx context.Context, input model.ProductInput) (int64, error) {
	query := `
		INSERT INTO products (title, price, description, category, image, seller_email, seller_name, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'draft', NOW())
		RETURNING id
	`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		input.Title, input.Price, input.Description, input.Category,
		input.Image, input.SellerID, input.SellerName).Scan(&id)
	if err != nil {
		r.logger.Error().Err(err).Str("title", input.Title).Msg("failed to create product")
		return 0, fmt.Errorf("failed to create product: %w", err)
	}

	r.logger.Debug().Int64("product_id", id).Str("title", input.Title).Msg("product created")
	return id, nil
}

// Update edits a product's listing fields.
func (r *productRepository) Update(ctx context.Context, id int64, input model.ProductInput) (bool, error) {
	query := `
		UPDATE products
		SET title = $1, price = $2, description = $3, category = $4, image = $5
		WHERE id = $6
	`

	tag, err := r.pool.Exec(ctx, query,
		input.Title, input.Price, input.Description, input.Category, input.Image, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to update product")
		return false, fmt.Errorf("failed to update product: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Delete removes a product.
func (r *productRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return false, fmt.Errorf("failed to delete product: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// SetStatus flips a product between draft and published.
func (r *productRepository) SetStatus(ctx context.Context, id int64, status string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE products SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", id).Str("status", status).
			Msg("failed to update product status")
		return false, fmt.Errorf("failed to update product status: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Search finds published products matching the term.
func (r *productRepository) Search(ctx context.Context, term string, limit int) ([]model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE status = 'published'
		  AND (title ILIKE $1 OR description ILIKE $1 OR category ILIKE $1)
		ORDER BY id
		LIMIT $2
	`
	return r.queryProducts(ctx, query, "%"+term+"%", limit)
}
