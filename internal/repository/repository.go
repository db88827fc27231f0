package repository

import (
	"context"

	"mystore/internal/model"

	"github.com/jackc/pgx/v5"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// GetPublished retrieves all published products for the shopper catalog.
	GetPublished(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by its ID regardless of status.
	// Returns nil when the product does not exist.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// GetBySeller retrieves all products owned by a seller, drafts included,
	// newest first.
	GetBySeller(ctx context.Context, sellerEmail string) ([]model.Product, error)

	// Create inserts a new product in draft status and returns its ID.
	Create(ctx context.Context, input model.ProductInput) (int64, error)

	// Update edits a product's listing fields. Returns false when no product
	// with that ID exists.
	Update(ctx context.Context, id int64, input model.ProductInput) (bool, error)

	// Delete removes a product. Returns false when no product with that ID
	// exists.
	Delete(ctx context.Context, id int64) (bool, error)

	// SetStatus flips a product between draft and published. Returns false
	// when no product with that ID exists.
	SetStatus(ctx context.Context, id int64, status string) (bool, error)

	// Search finds published products whose title, description or category
	// matches the term, capped at limit rows.
	Search(ctx context.Context, term string, limit int) ([]model.Product, error)
}

// ActivityRepository defines the interface for the seller activity log.
type ActivityRepository interface {
	// Append records one product action for a seller.
	Append(ctx context.Context, sellerEmail string, productID int64, action, productTitle string) error

	// ListBySeller retrieves a seller's most recent activity, newest first,
	// capped at limit rows.
	ListBySeller(ctx context.Context, sellerEmail string, limit int) ([]model.ActivityRecord, error)
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction and
	// returns its ID.
	CreateOrder(ctx context.Context, tx pgx.Tx, req model.OrderRequest) (int64, error)

	// CreateOrderItems inserts the order's line snapshots within the
	// provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, orderID int64, items []model.OrderItem) error

	// GetByEmail retrieves all orders placed by an email address along with
	// their items, newest first.
	GetByEmail(ctx context.Context, email string) ([]model.Order, error)
}

// UserRepository defines the interface for shopper account data access.
type UserRepository interface {
	// Create inserts a new shopper account.
	Create(ctx context.Context, user model.User) error

	// GetByEmail retrieves a shopper by email. Returns nil when no account
	// exists.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// UpdatePassword replaces a shopper's password hash. Returns false when
	// no account with that email exists.
	UpdatePassword(ctx context.Context, email, passwordHash string) (bool, error)
}

// SellerRepository defines the interface for seller account data access.
type SellerRepository interface {
	// Create inserts a new seller application in pending status.
	Create(ctx context.Context, seller model.Seller) error

	// GetByEmail retrieves a seller by email. Returns nil when no seller
	// exists.
	GetByEmail(ctx context.Context, email string) (*model.Seller, error)

	// UpdateStatus moves a seller between pending, approved and rejected.
	// Returns false when no seller with that email exists.
	UpdateStatus(ctx context.Context, email, status string) (bool, error)

	// UpdatePassword replaces a seller's password hash. Returns false when
	// no seller with that email exists.
	UpdatePassword(ctx context.Context, email, passwordHash string) (bool, error)
}

// ContactRepository defines the interface for contact form submissions.
type ContactRepository interface {
	// Create stores a contact form submission and returns its ID.
	Create(ctx context.Context, req model.ContactRequest) (int64, error)

	// List retrieves all stored submissions, newest first.
	List(ctx context.Context) ([]model.ContactMessage, error)
}
