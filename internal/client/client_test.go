package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mystore/internal/config"
	"mystore/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := New(config.StorefrontConfig{
		APIBaseURL:     srv.URL,
		RequestTimeout: 5 * time.Second,
	}, zerolog.Nop())
	return c, srv
}

func TestProducts(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/products", r.URL.Path)
		json.NewEncoder(w).Encode([]model.Product{
			{ID: 1, Title: "Keyboard", Price: 49.99, Status: model.StatusPublished},
		})
	}))

	products, err := c.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Keyboard", products[0].Title)
}

func TestProducts_SupplementarySourceMerged(t *testing.T) {
	extra := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]model.Product{{ID: 100, Title: "External"}})
	}))
	defer extra.Close()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]model.Product{{ID: 1, Title: "Local"}})
	}))
	defer srv.Close()

	c := New(config.StorefrontConfig{
		APIBaseURL:     srv.URL,
		CatalogURL:     extra.URL,
		RequestTimeout: 5 * time.Second,
	}, zerolog.Nop())

	products, err := c.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Local", products[0].Title)
	assert.Equal(t, "External", products[1].Title)
}

func TestProducts_UnreachableSupplementarySourceDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]model.Product{{ID: 1, Title: "Local"}})
	}))
	defer srv.Close()

	c := New(config.StorefrontConfig{
		APIBaseURL:     srv.URL,
		CatalogURL:     "http://127.0.0.1:1", // nothing listens here
		RequestTimeout: time.Second,
	}, zerolog.Nop())

	products, err := c.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Local", products[0].Title)
}

func TestProduct_NotFound(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(model.ErrorResponse{Error: "Product not found"})
	}))

	_, err := c.Product(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveOrder_BackendErrorDetailSurfaced(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/save-order", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(model.ErrorResponse{Error: "Missing order information"})
	}))

	err := c.SaveOrder(context.Background(), model.OrderRequest{})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Missing order information", apiErr.Message)
}

func TestSaveOrder_SendsSnapshotPayload(t *testing.T) {
	var got model.OrderRequest
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(messageResponse{Message: "Order saved successfully!"})
	}))

	req := model.OrderRequest{
		Email:      "shopper@example.com",
		FullName:   "Jane",
		Items:      []model.OrderItem{{Title: "Keyboard", Price: 49.99, Quantity: 1}},
		TotalPrice: 49.99,
		Address:    model.AddressInfo{City: "Springfield"},
	}
	require.NoError(t, c.SaveOrder(context.Background(), req))
	assert.Equal(t, req, got)
}

func TestPublishUnpublish_PathsAndMethods(t *testing.T) {
	var calls []string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		json.NewEncoder(w).Encode(messageResponse{Message: "ok"})
	}))

	require.NoError(t, c.PublishProduct(context.Background(), 7))
	require.NoError(t, c.UnpublishProduct(context.Background(), 7))

	assert.Equal(t, []string{
		"PATCH /products/7/publish",
		"PATCH /products/7/unpublish",
	}, calls)
}

func TestSellerProducts_QueryParameter(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "seller@example.com", r.URL.Query().Get("sellerId"))
		json.NewEncoder(w).Encode([]model.Product{{ID: 1, Status: model.StatusDraft}})
	}))

	products, err := c.SellerProducts(context.Background(), "seller@example.com")
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestCheckSellerStatus(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "seller@example.com", req["email"])
		json.NewEncoder(w).Encode(model.SellerStatus{
			Name:       "Seller",
			Email:      "seller@example.com",
			Status:     model.SellerApproved,
			IsApproved: true,
		})
	}))

	status, err := c.CheckSellerStatus(context.Background(), "seller@example.com")
	require.NoError(t, err)
	assert.True(t, status.IsApproved)
}

func TestChatProductSearch(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat-product-search", r.URL.Path)
		json.NewEncoder(w).Encode(model.ChatSearchResponse{
			Reply:    "We found these for you:",
			Products: []model.Product{{ID: 1, Title: "Running Shoes"}},
		})
	}))

	res, err := c.ChatProductSearch(context.Background(), "show me shoes")
	require.NoError(t, err)
	assert.Equal(t, "We found these for you:", res.Reply)
	assert.Len(t, res.Products, 1)
}

func TestOrdersByEmail_EscapesPath(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get-orders/shopper@example.com", r.URL.Path)
		json.NewEncoder(w).Encode([]model.Order{{ID: 1, TotalPrice: 49.99}})
	}))

	orders, err := c.OrdersByEmail(context.Background(), "shopper@example.com")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, int64(1), orders[0].ID)
}

func TestTimeout_BoundsHangingBackend(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	c.httpClient.Timeout = 20 * time.Millisecond

	_, err := c.Products(context.Background())
	assert.Error(t, err)
}
