package service

import (
	"context"
	"fmt"
	"strings"

	"mystore/internal/model"
	"mystore/internal/notify"
	"mystore/internal/repository"

	"github.com/rs/zerolog"
)

// activityLimit caps how much history the dashboard feed shows.
const activityLimit = 50

// chatSearchLimit caps how many products a chat reply carries.
const chatSearchLimit = 3

// catalogRating is the placeholder review score attached to every catalog
// product until real reviews exist.
var catalogRating = model.Rating{Rate: 4.5, Count: 10}

// productService implements ProductService.
type productService struct {
	productRepo  repository.ProductRepository
	activityRepo repository.ActivityRepository
	sellerRepo   repository.SellerRepository
	mailer       notify.Mailer
	logger       zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(
	productRepo repository.ProductRepository,
	activityRepo repository.ActivityRepository,
	sellerRepo repository.SellerRepository,
	mailer notify.Mailer,
	logger zerolog.Logger,
) ProductService {
	return &productService{
		productRepo:  productRepo,
		activityRepo: activityRepo,
		sellerRepo:   sellerRepo,
		mailer:       mailer,
		logger:       logger.With().Str("service", "product").Logger(),
	}
}

// requireApprovedSeller resolves the seller behind a product operation.
// Unknown sellers and accounts that are not approved are both rejected.
func (s *productService) requireApprovedSeller(ctx context.Context, email string) (*model.Seller, error) {
	seller, err := s.sellerRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check seller: %w", err)
	}
	if seller == nil {
		return nil, model.ErrSellerNotFound
	}
	if seller.Status != model.SellerApproved {
		return nil, model.ErrSellerNotApproved
	}
	return seller, nil
}

// GetCatalog retrieves all published products for the shopper catalog.
func (s *productService) GetCatalog(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.GetPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog: %w", err)
	}

	for i := range products {
		products[i].Rating = catalogRating
	}
	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	product.Rating = catalogRating
	return product, nil
}

// GetForSeller retrieves a seller's products, drafts included.
func (s *productService) GetForSeller(ctx context.Context, sellerEmail string) ([]model.Product, error) {
	if _, err := s.requireApprovedSeller(ctx, sellerEmail); err != nil {
		return nil, err
	}

	products, err := s.productRepo.GetBySeller(ctx, sellerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to get seller products: %w", err)
	}
	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}

// GetActivity retrieves a seller's recent activity log.
func (s *productService) GetActivity(ctx context.Context, sellerEmail string) ([]model.ActivityRecord, error) {
	if _, err := s.requireApprovedSeller(ctx, sellerEmail); err != nil {
		return nil, err
	}

	records, err := s.activityRepo.ListBySeller(ctx, sellerEmail, activityLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get seller activity: %w", err)
	}
	if records == nil {
		records = []model.ActivityRecord{}
	}
	return records, nil
}

// Create adds a new draft product for a seller. Only an approved seller
// account may list products.
func (s *productService) Create(ctx context.Context, input model.ProductInput) (int64, error) {
	if _, err := s.requireApprovedSeller(ctx, input.SellerID); err != nil {
		return 0, err
	}
	if strings.TrimSpace(input.Title) == "" || input.Price <= 0 || strings.TrimSpace(input.Category) == "" {
		return 0, model.NewDomainError(model.ErrCodeMissingField, "Title, price and category are required")
	}

	id, err := s.productRepo.Create(ctx, input)
	if err != nil {
		return 0, fmt.Errorf("failed to create product: %w", err)
	}

	s.recordActivity(ctx, input.SellerID, id, model.ActionCreated, input.Title)
	s.logger.Info().Int64("product_id", id).Str("seller", input.SellerID).Msg("product created")
	return id, nil
}

// Update edits a product's listing fields.
func (s *productService) Update(ctx context.Context, id int64, input model.ProductInput) error {
	existing, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if existing == nil {
		return model.ErrProductNotFound
	}

	found, err := s.productRepo.Update(ctx, id, input)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if !found {
		return model.ErrProductNotFound
	}

	s.recordActivity(ctx, existing.SellerID, id, model.ActionUpdated, input.Title)
	return nil
}

// Delete removes a product.
func (s *productService) Delete(ctx context.Context, id int64) error {
	existing, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if existing == nil {
		return model.ErrProductNotFound
	}

	found, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if !found {
		return model.ErrProductNotFound
	}

	s.recordActivity(ctx, existing.SellerID, id, model.ActionDeleted, existing.Title)
	return nil
}

// SetPublished publishes or unpublishes a product.
func (s *productService) SetPublished(ctx context.Context, id int64, published bool) error {
	existing, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to change product status: %w", err)
	}
	if existing == nil {
		return model.ErrProductNotFound
	}

	status := model.StatusDraft
	action := model.ActionUnpublished
	if published {
		status = model.StatusPublished
		action = model.ActionPublished
	}

	found, err := s.productRepo.SetStatus(ctx, id, status)
	if err != nil {
		return fmt.Errorf("failed to change product status: %w", err)
	}
	if !found {
		return model.ErrProductNotFound
	}

	s.recordActivity(ctx, existing.SellerID, id, action, existing.Title)
	return nil
}

// ChatSearch finds a few published products matching a chat message.
func (s *productService) ChatSearch(ctx context.Context, message string) (model.ChatSearchResponse, error) {
	term := strings.TrimSpace(message)
	if term == "" {
		return model.ChatSearchResponse{
			Reply:    "Tell me what you're looking for and I'll search the store.",
			Products: []model.Product{},
		}, nil
	}

	products, err := s.productRepo.Search(ctx, term, chatSearchLimit)
	if err != nil {
		return model.ChatSearchResponse{}, fmt.Errorf("failed to search products: %w", err)
	}

	if len(products) == 0 {
		return model.ChatSearchResponse{
			Reply:    "Sorry, I couldn't find any matching products. Try a different keyword!",
			Products: []model.Product{},
		}, nil
	}

	for i := range products {
		products[i].Rating = catalogRating
	}
	return model.ChatSearchResponse{
		Reply:    "Here's what I found for you:",
		Products: products,
	}, nil
}

// recordActivity appends to the seller activity log and emails the seller
// about the change. Neither failure fails the product operation itself.
func (s *productService) recordActivity(ctx context.Context, sellerEmail string, productID int64, action, title string) {
	if sellerEmail == "" {
		return
	}
	if err := s.activityRepo.Append(ctx, sellerEmail, productID, action, title); err != nil {
		s.logger.Warn().Err(err).
			Int64("product_id", productID).
			Str("action", action).
			Msg("failed to record activity")
	}

	subject, body := notify.ProductActivityBody(action, title)
	if err := s.mailer.Send(ctx, sellerEmail, subject, body); err != nil {
		s.logger.Warn().Err(err).
			Int64("product_id", productID).
			Str("action", action).
			Msg("failed to send activity email")
	}
}
