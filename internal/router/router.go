package router

import (
	"net/http"

	"mystore/internal/handler"
	"mystore/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
// Admin routes require the X-API-Key header; everything else is public.
func New(
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	sellerHandler *handler.SellerHandler,
	authHandler *handler.AuthHandler,
	contactHandler *handler.ContactHandler,
	adminAPIKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Catalog
	mux.HandleFunc("GET /products", productHandler.Catalog)
	mux.HandleFunc("GET /products/{id}", productHandler.GetByID)
	mux.HandleFunc("POST /chat-product-search", productHandler.ChatSearch)

	// Seller product lifecycle
	mux.HandleFunc("GET /seller-products", productHandler.SellerProducts)
	mux.HandleFunc("GET /seller-activity", productHandler.SellerActivity)
	mux.HandleFunc("POST /add-product", productHandler.Add)
	mux.HandleFunc("PUT /products/{id}", productHandler.Update)
	mux.HandleFunc("DELETE /products/{id}", productHandler.Delete)
	mux.HandleFunc("PATCH /products/{id}/publish", productHandler.Publish)
	mux.HandleFunc("PATCH /products/{id}/unpublish", productHandler.Unpublish)

	// Orders
	mux.HandleFunc("POST /save-order", orderHandler.Save)
	mux.HandleFunc("POST /send-order-email", orderHandler.SendEmail)
	mux.HandleFunc("GET /get-orders/{email}", orderHandler.History)

	// Shopper accounts
	mux.HandleFunc("POST /signup", authHandler.Signup)
	mux.HandleFunc("POST /login", authHandler.Login)
	mux.HandleFunc("POST /send-otp", authHandler.SendOTP)
	mux.HandleFunc("POST /verify-otp", authHandler.VerifyOTP)
	mux.HandleFunc("POST /forgot-password/send-otp", authHandler.SendResetOTP)
	mux.HandleFunc("POST /forgot-password/verify-otp", authHandler.VerifyResetOTP)
	mux.HandleFunc("POST /forgot-password/reset", authHandler.ResetPassword)

	// Seller accounts
	mux.HandleFunc("POST /seller-signup", sellerHandler.Signup)
	mux.HandleFunc("POST /seller-login", sellerHandler.Login)
	mux.HandleFunc("POST /check-seller-status", sellerHandler.CheckStatus)

	// Contact form
	mux.HandleFunc("POST /contact-us", contactHandler.Submit)

	// Admin-only routes
	adminAuth := middleware.AdminAuth(adminAPIKey, logger)
	mux.Handle("POST /update-seller-status", adminAuth(http.HandlerFunc(sellerHandler.UpdateStatus)))
	mux.Handle("GET /admin/contact-messages", adminAuth(http.HandlerFunc(contactHandler.List)))

	// Middleware chain: recovery -> logging -> CORS -> mux
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
