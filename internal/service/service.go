package service

import (
	"context"

	"mystore/internal/model"
)

// ProductService defines operations for the product catalog and the seller
// product lifecycle.
type ProductService interface {
	// GetCatalog retrieves all published products for the shopper catalog.
	GetCatalog(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single published-or-draft product by ID.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// GetForSeller retrieves a seller's products, drafts included.
	GetForSeller(ctx context.Context, sellerEmail string) ([]model.Product, error)

	// GetActivity retrieves a seller's recent activity log, newest first.
	GetActivity(ctx context.Context, sellerEmail string) ([]model.ActivityRecord, error)

	// Create adds a new draft product for a seller and returns its ID.
	Create(ctx context.Context, input model.ProductInput) (int64, error)

	// Update edits a product's listing fields.
	Update(ctx context.Context, id int64, input model.ProductInput) error

	// Delete removes a product.
	Delete(ctx context.Context, id int64) error

	// SetPublished publishes or unpublishes a product.
	SetPublished(ctx context.Context, id int64, published bool) error

	// ChatSearch finds a few published products matching a free-text chat
	// message.
	ChatSearch(ctx context.Context, message string) (model.ChatSearchResponse, error)
}

// OrderService defines operations for order capture and history.
type OrderService interface {
	// Save persists an order with its item snapshots and returns its ID.
	Save(ctx context.Context, req model.OrderRequest) (int64, error)

	// SendConfirmation emails the order confirmation to the buyer.
	SendConfirmation(ctx context.Context, req model.OrderRequest) error

	// GetByEmail retrieves all orders placed by an email, newest first.
	GetByEmail(ctx context.Context, email string) ([]model.Order, error)
}

// SellerService defines operations for seller accounts.
type SellerService interface {
	// Signup registers a new seller application in pending status.
	Signup(ctx context.Context, req model.SellerSignupRequest) error

	// Login authenticates a seller. Pending and rejected sellers are
	// refused with a status-specific error.
	Login(ctx context.Context, creds model.Credentials) (model.SellerStatus, error)

	// CheckStatus reports whether a seller is currently approved.
	CheckStatus(ctx context.Context, email string) (model.SellerStatus, error)

	// UpdateStatus approves or rejects a seller application and notifies
	// the applicant.
	UpdateStatus(ctx context.Context, email, status string) error
}

// AuthService defines operations for shopper accounts and the shared
// password reset flow.
type AuthService interface {
	// Signup registers a new shopper account.
	Signup(ctx context.Context, req model.SignupRequest) error

	// Login authenticates a shopper and returns their profile.
	Login(ctx context.Context, creds model.Credentials) (*model.User, error)

	// SendOTP issues and emails a verification code for signup.
	SendOTP(ctx context.Context, email string) error

	// VerifyOTP checks a signup verification code.
	VerifyOTP(ctx context.Context, email, code string) error

	// SendResetOTP issues and emails a password reset code after checking
	// that an account of the given type exists.
	SendResetOTP(ctx context.Context, email, userType string) error

	// CheckResetOTP validates a reset code without consuming it, so the
	// same code still works for the final reset request.
	CheckResetOTP(ctx context.Context, email, code string) error

	// ResetPassword verifies a reset code and replaces the account password.
	ResetPassword(ctx context.Context, req model.ResetPasswordRequest) error
}

// ContactService defines operations for the contact form.
type ContactService interface {
	// Submit stores a contact form submission and forwards a copy to the
	// admin inbox.
	Submit(ctx context.Context, req model.ContactRequest) error

	// List retrieves all stored submissions, newest first.
	List(ctx context.Context) ([]model.ContactMessage, error)
}
