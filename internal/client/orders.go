package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"mystore/internal/model"
)

// SaveOrder persists an order snapshot on the backend.
func (c *Client) SaveOrder(ctx context.Context, req model.OrderRequest) error {
	if err := c.do(ctx, http.MethodPost, c.url("/save-order"), req, nil); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

// SendOrderEmail requests the confirmation email for a saved order.
func (c *Client) SendOrderEmail(ctx context.Context, req model.OrderRequest) error {
	if err := c.do(ctx, http.MethodPost, c.url("/send-order-email"), req, nil); err != nil {
		return fmt.Errorf("failed to send order email: %w", err)
	}
	return nil
}

// OrdersByEmail fetches the shopper's order history, newest first.
func (c *Client) OrdersByEmail(ctx context.Context, email string) ([]model.Order, error) {
	var orders []model.Order
	path := "/get-orders/" + url.PathEscape(email)
	if err := c.do(ctx, http.MethodGet, c.url(path), nil, &orders); err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, nil
}
