package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"mystore/internal/model"
)

// addProductResponse is the creation response carrying the new product id.
type addProductResponse struct {
	Message   string `json:"message"`
	ProductID int64  `json:"product_id"`
	Status    string `json:"status"`
}

// SellerProducts fetches all products owned by sellerID, drafts included.
func (c *Client) SellerProducts(ctx context.Context, sellerID string) ([]model.Product, error) {
	var products []model.Product
	u := c.url("/seller-products?sellerId=" + url.QueryEscape(sellerID))
	if err := c.do(ctx, http.MethodGet, u, nil, &products); err != nil {
		return nil, fmt.Errorf("failed to fetch seller products: %w", err)
	}
	return products, nil
}

// SellerActivity fetches the seller's append-only activity log, newest
// first.
func (c *Client) SellerActivity(ctx context.Context, sellerID string) ([]model.ActivityRecord, error) {
	var records []model.ActivityRecord
	u := c.url("/seller-activity?sellerId=" + url.QueryEscape(sellerID))
	if err := c.do(ctx, http.MethodGet, u, nil, &records); err != nil {
		return nil, fmt.Errorf("failed to fetch seller activity: %w", err)
	}
	return records, nil
}

// AddProduct creates a new draft product and returns its server-assigned id.
func (c *Client) AddProduct(ctx context.Context, input model.ProductInput) (int64, error) {
	var res addProductResponse
	if err := c.do(ctx, http.MethodPost, c.url("/add-product"), input, &res); err != nil {
		return 0, fmt.Errorf("failed to add product: %w", err)
	}
	return res.ProductID, nil
}

// UpdateProduct replaces the editable fields of an existing product.
func (c *Client) UpdateProduct(ctx context.Context, id int64, input model.ProductInput) error {
	u := c.url(fmt.Sprintf("/products/%d", id))
	if err := c.do(ctx, http.MethodPut, u, input, nil); err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

// DeleteProduct permanently removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	u := c.url(fmt.Sprintf("/products/%d", id))
	if err := c.do(ctx, http.MethodDelete, u, nil, nil); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// PublishProduct makes a draft product visible to shoppers.
func (c *Client) PublishProduct(ctx context.Context, id int64) error {
	u := c.url(fmt.Sprintf("/products/%d/publish", id))
	if err := c.do(ctx, http.MethodPatch, u, nil, nil); err != nil {
		return fmt.Errorf("failed to publish product: %w", err)
	}
	return nil
}

// UnpublishProduct moves a product back to draft.
func (c *Client) UnpublishProduct(ctx context.Context, id int64) error {
	u := c.url(fmt.Sprintf("/products/%d/unpublish", id))
	if err := c.do(ctx, http.MethodPatch, u, nil, nil); err != nil {
		return fmt.Errorf("failed to unpublish product: %w", err)
	}
	return nil
}

// CheckSellerStatus re-validates a seller's approval against the backend.
func (c *Client) CheckSellerStatus(ctx context.Context, email string) (model.SellerStatus, error) {
	var status model.SellerStatus
	req := map[string]string{"email": email}
	if err := c.do(ctx, http.MethodPost, c.url("/check-seller-status"), req, &status); err != nil {
		return model.SellerStatus{}, err
	}
	return status, nil
}
