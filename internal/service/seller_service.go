package service

import (
	"context"
	"fmt"
	"strings"

	"mystore/internal/model"
	"mystore/internal/notify"
	"mystore/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// sellerService implements SellerService.
type sellerService struct {
	sellerRepo repository.SellerRepository
	mailer     notify.Mailer
	logger     zerolog.Logger
}

// NewSellerService creates a new seller service.
func NewSellerService(sellerRepo repository.SellerRepository, mailer notify.Mailer, logger zerolog.Logger) SellerService {
	return &sellerService{
		sellerRepo: sellerRepo,
		mailer:     mailer,
		logger:     logger.With().Str("service", "seller").Logger(),
	}
}

// Signup registers a new seller application in pending status.
func (s *sellerService) Signup(ctx context.Context, req model.SellerSignupRequest) error {
	if req.Name == "" || req.Email == "" || req.StoreName == "" || req.Password == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Name, email, store name and password are required")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	existing, err := s.sellerRepo.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to sign up seller: %w", err)
	}
	if existing != nil {
		return model.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	seller := model.Seller{
		FullName:         req.Name,
		Email:            email,
		StoreName:        req.StoreName,
		StoreDescription: req.StoreDescription,
		Password:         string(hash),
	}
	if err := s.sellerRepo.Create(ctx, seller); err != nil {
		return fmt.Errorf("failed to sign up seller: %w", err)
	}

	subject, body := notify.SellerApplicationBody(req.Name, req.StoreName)
	if err := s.mailer.Send(ctx, email, subject, body); err != nil {
		s.logger.Warn().Err(err).Str("email", email).Msg("failed to send application acknowledgement")
	}

	s.logger.Info().Str("email", email).Str("store", req.StoreName).Msg("seller application received")
	return nil
}

// Login authenticates a seller.
func (s *sellerService) Login(ctx context.Context, creds model.Credentials) (model.SellerStatus, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))
	seller, err := s.sellerRepo.GetByEmail(ctx, email)
	if err != nil {
		return model.SellerStatus{}, fmt.Errorf("failed to log in seller: %w", err)
	}
	if seller == nil {
		return model.SellerStatus{}, model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(seller.Password), []byte(creds.Password)); err != nil {
		return model.SellerStatus{}, model.ErrInvalidCredentials
	}

	switch seller.Status {
	case model.SellerPending:
		return model.SellerStatus{}, model.ErrSellerPending
	case model.SellerRejected:
		return model.SellerStatus{}, model.ErrSellerRejected
	}

	return model.SellerStatus{
		Name:       seller.FullName,
		Email:      seller.Email,
		Status:     seller.Status,
		IsApproved: true,
	}, nil
}

// CheckStatus reports whether a seller is currently approved.
func (s *sellerService) CheckStatus(ctx context.Context, email string) (model.SellerStatus, error) {
	seller, err := s.sellerRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return model.SellerStatus{}, fmt.Errorf("failed to check seller status: %w", err)
	}
	if seller == nil {
		return model.SellerStatus{}, model.ErrSellerNotFound
	}

	return model.SellerStatus{
		Name:       seller.FullName,
		Email:      seller.Email,
		Status:     seller.Status,
		IsApproved: seller.Status == model.SellerApproved,
	}, nil
}

// UpdateStatus approves or rejects a seller application.
func (s *sellerService) UpdateStatus(ctx context.Context, email, status string) error {
	if status != model.SellerApproved && status != model.SellerRejected {
		return model.NewDomainError(model.ErrCodeMissingField, "Status must be approved or rejected")
	}

	email = strings.ToLower(strings.TrimSpace(email))
	seller, err := s.sellerRepo.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to update seller status: %w", err)
	}
	if seller == nil {
		return model.ErrSellerNotFound
	}

	found, err := s.sellerRepo.UpdateStatus(ctx, email, status)
	if err != nil {
		return fmt.Errorf("failed to update seller status: %w", err)
	}
	if !found {
		return model.ErrSellerNotFound
	}

	subject, body := notify.SellerDecisionBody(seller.FullName, status)
	if err := s.mailer.Send(ctx, email, subject, body); err != nil {
		s.logger.Warn().Err(err).Str("email", email).Msg("failed to send decision email")
	}

	s.logger.Info().Str("email", email).Str("status", status).Msg("seller status updated")
	return nil
}
