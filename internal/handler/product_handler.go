package handler

import (
	"net/http"
	"strconv"

	"mystore/internal/model"
	"mystore/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles catalog and seller product HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// Catalog handles GET /products requests.
func (h *ProductHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.GetCatalog(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// SellerProducts handles GET /seller-products?sellerId= requests.
func (h *ProductHandler) SellerProducts(w http.ResponseWriter, r *http.Request) {
	sellerID := r.URL.Query().Get("sellerId")
	if sellerID == "" {
		writeError(w, http.StatusBadRequest, "sellerId is required", h.logger)
		return
	}

	products, err := h.service.GetForSeller(r.Context(), sellerID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// SellerActivity handles GET /seller-activity?sellerId= requests.
func (h *ProductHandler) SellerActivity(w http.ResponseWriter, r *http.Request) {
	sellerID := r.URL.Query().Get("sellerId")
	if sellerID == "" {
		writeError(w, http.StatusBadRequest, "sellerId is required", h.logger)
		return
	}

	records, err := h.service.GetActivity(r.Context(), sellerID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// Add handles POST /add-product requests. New products start as drafts.
func (h *ProductHandler) Add(w http.ResponseWriter, r *http.Request) {
	var input model.ProductInput
	if err := decodeJSON(r, &input); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	id, err := h.service.Create(r.Context(), input)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":    "Product added successfully",
		"product_id": id,
		"status":     model.StatusDraft,
	})
}

// Update handles PUT /products/{id} requests.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	var input model.ProductInput
	if err := decodeJSON(r, &input); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	if err := h.service.Update(r.Context(), id, input); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Product updated successfully"})
}

// Delete handles DELETE /products/{id} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

// Publish handles PATCH /products/{id}/publish requests.
func (h *ProductHandler) Publish(w http.ResponseWriter, r *http.Request) {
	h.setPublished(w, r, true, "Product published successfully")
}

// Unpublish handles PATCH /products/{id}/unpublish requests.
func (h *ProductHandler) Unpublish(w http.ResponseWriter, r *http.Request) {
	h.setPublished(w, r, false, "Product unpublished successfully")
}

func (h *ProductHandler) setPublished(w http.ResponseWriter, r *http.Request, published bool, message string) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	if err := h.service.SetPublished(r.Context(), id, published); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}

// ChatSearch handles POST /chat-product-search requests.
func (h *ProductHandler) ChatSearch(w http.ResponseWriter, r *http.Request) {
	var req model.ChatSearchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	res, err := h.service.ChatSearch(r.Context(), req.Message)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *ProductHandler) productID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID", h.logger)
		return 0, false
	}
	return id, true
}
