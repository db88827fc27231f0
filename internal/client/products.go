package client

import (
	"context"
	"fmt"
	"net/http"

	"mystore/internal/model"
)

// Products fetches the published catalog. When a supplementary catalog
// source is configured its products are appended to the listing; an
// unreachable supplementary source degrades to an empty list rather than
// failing the whole listing.
func (c *Client) Products(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := c.do(ctx, http.MethodGet, c.url("/products"), nil, &products); err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	if c.catalogURL != "" {
		var extra []model.Product
		if err := c.do(ctx, http.MethodGet, c.catalogURL, nil, &extra); err != nil {
			c.logger.Warn().Err(err).Msg("supplementary catalog unavailable, showing store products only")
		} else {
			products = append(products, extra...)
		}
	}

	return products, nil
}

// Product fetches a single product. Returns ErrNotFound for unknown ids.
func (c *Client) Product(ctx context.Context, id int64) (*model.Product, error) {
	var p model.Product
	if err := c.do(ctx, http.MethodGet, c.url(fmt.Sprintf("/products/%d", id)), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ChatProductSearch forwards an unclassified chat message to the backend
// product search.
func (c *Client) ChatProductSearch(ctx context.Context, message string) (model.ChatSearchResponse, error) {
	var res model.ChatSearchResponse
	err := c.do(ctx, http.MethodPost, c.url("/chat-product-search"),
		model.ChatSearchRequest{Message: message}, &res)
	return res, err
}
