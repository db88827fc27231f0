// Package dashboard drives the seller console: it gates entry on an
// approved seller session, keeps the seller's product list and activity
// feed loaded, and funnels every product mutation through the backend
// followed by a full refetch so the view never drifts from stored state.
package dashboard

import (
	"context"
	"errors"
	"fmt"

	"mystore/internal/model"
	"mystore/internal/session"

	"github.com/rs/zerolog"
)

// ErrNotAuthorized reports that no approved seller session exists. The
// caller sends the user to seller login.
var ErrNotAuthorized = errors.New("seller not authorized")

// SellerAPI is the slice of the backend client the dashboard needs.
type SellerAPI interface {
	SellerProducts(ctx context.Context, sellerID string) ([]model.Product, error)
	SellerActivity(ctx context.Context, sellerID string) ([]model.ActivityRecord, error)
	AddProduct(ctx context.Context, input model.ProductInput) (int64, error)
	UpdateProduct(ctx context.Context, id int64, input model.ProductInput) error
	DeleteProduct(ctx context.Context, id int64) error
	PublishProduct(ctx context.Context, id int64) error
	UnpublishProduct(ctx context.Context, id int64) error
	CheckSellerStatus(ctx context.Context, email string) (model.SellerStatus, error)
}

// Dashboard holds the seller console's loaded state.
type Dashboard struct {
	api      SellerAPI
	session  *session.Session
	logger   zerolog.Logger
	products []model.Product
	activity []model.ActivityRecord
}

func New(api SellerAPI, sess *session.Session, logger zerolog.Logger) *Dashboard {
	return &Dashboard{
		api:     api,
		session: sess,
		logger:  logger.With().Str("component", "seller-dashboard").Logger(),
	}
}

// Open gates entry to the console. The stored session must carry an
// approved seller, and the backend must still agree: approvals can be
// revoked between visits, so the status is re-checked on every open. A
// definite negative answer clears the stale session before rejecting; a
// failed check keeps the session so a transient outage does not force a
// re-login.
func (d *Dashboard) Open(ctx context.Context) error {
	seller, ok := d.session.Seller()
	if !ok || !seller.Approved() {
		return ErrNotAuthorized
	}

	status, err := d.api.CheckSellerStatus(ctx, seller.Email)
	if err != nil {
		d.logger.Warn().Err(err).Str("seller", seller.Email).Msg("seller status check failed")
		return fmt.Errorf("failed to verify seller status: %w", err)
	}
	if !status.IsApproved {
		d.logger.Info().Str("seller", seller.Email).Str("status", status.Status).Msg("seller no longer approved")
		d.session.ClearSeller()
		return ErrNotAuthorized
	}

	return d.Refresh(ctx)
}

// Refresh refetches the seller's products and activity feed.
func (d *Dashboard) Refresh(ctx context.Context) error {
	seller, ok := d.session.Seller()
	if !ok {
		return ErrNotAuthorized
	}

	products, err := d.api.SellerProducts(ctx, seller.Email)
	if err != nil {
		return fmt.Errorf("failed to load seller products: %w", err)
	}
	activity, err := d.api.SellerActivity(ctx, seller.Email)
	if err != nil {
		return fmt.Errorf("failed to load seller activity: %w", err)
	}

	d.products = products
	d.activity = activity
	return nil
}

// Create adds a new product (stored as a draft) and reloads the console.
func (d *Dashboard) Create(ctx context.Context, input model.ProductInput) (int64, error) {
	id, err := d.api.AddProduct(ctx, input)
	if err != nil {
		return 0, err
	}
	return id, d.Refresh(ctx)
}

// Update edits an existing product and reloads the console.
func (d *Dashboard) Update(ctx context.Context, id int64, input model.ProductInput) error {
	if err := d.api.UpdateProduct(ctx, id, input); err != nil {
		return err
	}
	return d.Refresh(ctx)
}

// Delete removes a product and reloads the console.
func (d *Dashboard) Delete(ctx context.Context, id int64) error {
	if err := d.api.DeleteProduct(ctx, id); err != nil {
		return err
	}
	return d.Refresh(ctx)
}

// Publish makes a product visible in the shopper catalog.
func (d *Dashboard) Publish(ctx context.Context, id int64) error {
	if err := d.api.PublishProduct(ctx, id); err != nil {
		return err
	}
	return d.Refresh(ctx)
}

// Unpublish pulls a product back to draft.
func (d *Dashboard) Unpublish(ctx context.Context, id int64) error {
	if err := d.api.UnpublishProduct(ctx, id); err != nil {
		return err
	}
	return d.Refresh(ctx)
}

// Products returns the loaded product list, drafts included.
func (d *Dashboard) Products() []model.Product {
	out := make([]model.Product, len(d.products))
	copy(out, d.products)
	return out
}

// Activity returns the loaded activity feed, newest first.
func (d *Dashboard) Activity() []model.ActivityRecord {
	out := make([]model.ActivityRecord, len(d.activity))
	copy(out, d.activity)
	return out
}
