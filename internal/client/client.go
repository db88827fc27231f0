// Package client is the storefront's HTTP client for the MyStore backend.
// Every call is a single JSON request/response exchange with an explicit
// timeout; backend-reported errors surface as APIError with the detail
// text the backend provided.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"mystore/internal/config"
	"mystore/internal/model"

	"github.com/rs/zerolog"
)

// ErrNotFound reports a 404 from the backend (missing product, unknown
// seller). Callers render it inline rather than treating it as a failure.
var ErrNotFound = errors.New("not found")

// APIError is a non-2xx backend response with its decoded detail message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// messageResponse is the generic {"message": ...} success envelope.
type messageResponse struct {
	Message string `json:"message"`
}

// Client talks to the MyStore backend.
type Client struct {
	baseURL    string
	catalogURL string
	httpClient *http.Client
	logger     zerolog.Logger
}

// New creates a client from storefront configuration. The request timeout
// bounds every call; a hanging backend becomes a user-visible failure
// instead of an indefinite loading state.
func New(cfg config.StorefrontConfig, logger zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.APIBaseURL, "/"),
		catalogURL: cfg.CatalogURL,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		logger:     logger.With().Str("component", "api-client").Logger(),
	}
}

// do issues one JSON exchange. A nil body sends no payload; a nil out
// discards the response body. 404 maps to ErrNotFound, other non-2xx to
// APIError carrying the backend's error detail.
func (c *Client) do(ctx context.Context, method, url string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp model.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)

		c.logger.Debug().
			Str("method", method).
			Str("url", url).
			Int("status", resp.StatusCode).
			Str("error", errResp.Error).
			Msg("backend error response")

		if resp.StatusCode == http.StatusNotFound {
			return ErrNotFound
		}
		return &APIError{Status: resp.StatusCode, Message: errResp.Error}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) url(path string) string {
	return c.baseURL + path
}
