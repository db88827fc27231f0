package handler

import (
	"net/http"

	"mystore/internal/model"
	"mystore/internal/service"

	"github.com/rs/zerolog"
)

// SellerHandler handles seller account HTTP requests.
type SellerHandler struct {
	service service.SellerService
	logger  zerolog.Logger
}

// NewSellerHandler creates a new seller handler.
func NewSellerHandler(service service.SellerService, logger zerolog.Logger) *SellerHandler {
	return &SellerHandler{
		service: service,
		logger:  logger.With().Str("handler", "seller").Logger(),
	}
}

// Signup handles POST /seller-signup requests.
func (h *SellerHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req model.SellerSignupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	if err := h.service.Signup(r.Context(), req); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Application received! We'll review it and get back to you soon.",
	})
}

// Login handles POST /seller-login requests.
func (h *SellerHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds model.Credentials
	if err := decodeJSON(r, &creds); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	status, err := h.service.Login(r.Context(), creds)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Login successful",
		"name":    status.Name,
		"email":   status.Email,
		"status":  status.Status,
	})
}

// CheckStatus handles POST /check-seller-status requests.
func (h *SellerHandler) CheckStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	status, err := h.service.CheckStatus(r.Context(), req.Email)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

// UpdateStatus handles POST /update-seller-status requests. This endpoint
// sits behind the admin API key.
func (h *SellerHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email  string `json:"email"`
		Status string `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), req.Email, req.Status); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Seller status updated"})
}
