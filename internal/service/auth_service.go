package service

import (
	"context"
	"fmt"
	"strings"

	"mystore/internal/model"
	"mystore/internal/notify"
	"mystore/internal/otp"
	"mystore/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// authService implements AuthService.
type authService struct {
	userRepo   repository.UserRepository
	sellerRepo repository.SellerRepository
	otps       *otp.Store
	mailer     notify.Mailer
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(
	userRepo repository.UserRepository,
	sellerRepo repository.SellerRepository,
	otps *otp.Store,
	mailer notify.Mailer,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		userRepo:   userRepo,
		sellerRepo: sellerRepo,
		otps:       otps,
		mailer:     mailer,
		logger:     logger.With().Str("service", "auth").Logger(),
	}
}

// Signup registers a new shopper account.
func (s *authService) Signup(ctx context.Context, req model.SignupRequest) error {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Name, email and password are required")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to sign up: %w", err)
	}
	if existing != nil {
		return model.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{Name: req.Name, Email: email, Password: string(hash)}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to sign up: %w", err)
	}

	s.logger.Info().Str("email", email).Msg("shopper account created")
	return nil
}

// Login authenticates a shopper.
func (s *authService) Login(ctx context.Context, creds model.Credentials) (*model.User, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to log in: %w", err)
	}
	if user == nil {
		return nil, model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	return user, nil
}

// SendOTP issues and emails a signup verification code.
func (s *authService) SendOTP(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Email is required")
	}

	code, err := s.otps.Issue(email)
	if err != nil {
		return fmt.Errorf("failed to send otp: %w", err)
	}

	subject, body := notify.OTPBody(code)
	if err := s.mailer.Send(ctx, email, subject, body); err != nil {
		return fmt.Errorf("failed to send otp: %w", err)
	}

	s.logger.Info().Str("email", email).Msg("otp sent")
	return nil
}

// VerifyOTP checks a signup verification code.
func (s *authService) VerifyOTP(ctx context.Context, email, code string) error {
	return s.otps.Verify(strings.ToLower(strings.TrimSpace(email)), code)
}

// SendResetOTP issues a password reset code after checking the account
// exists for the given account type.
func (s *authService) SendResetOTP(ctx context.Context, email, userType string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Email is required")
	}

	exists, err := s.accountExists(ctx, email, userType)
	if err != nil {
		return err
	}
	if !exists {
		return model.NewDomainError(model.ErrCodeInvalidCredential, "No account found with this email")
	}

	return s.SendOTP(ctx, email)
}

// CheckResetOTP validates a reset code without consuming it.
func (s *authService) CheckResetOTP(ctx context.Context, email, code string) error {
	return s.otps.Check(strings.ToLower(strings.TrimSpace(email)), code)
}

// ResetPassword verifies a reset code and replaces the account password.
func (s *authService) ResetPassword(ctx context.Context, req model.ResetPasswordRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.OTP == "" || req.NewPassword == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Email, OTP and new password are required")
	}

	if err := s.otps.Verify(email, req.OTP); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	var found bool
	if req.UserType == model.AccountSeller {
		found, err = s.sellerRepo.UpdatePassword(ctx, email, string(hash))
	} else {
		found, err = s.userRepo.UpdatePassword(ctx, email, string(hash))
	}
	if err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}
	if !found {
		return model.NewDomainError(model.ErrCodeInvalidCredential, "No account found with this email")
	}

	s.logger.Info().Str("email", email).Str("user_type", req.UserType).Msg("password reset")
	return nil
}

func (s *authService) accountExists(ctx context.Context, email, userType string) (bool, error) {
	if userType == model.AccountSeller {
		seller, err := s.sellerRepo.GetByEmail(ctx, email)
		if err != nil {
			return false, fmt.Errorf("failed to look up account: %w", err)
		}
		return seller != nil, nil
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("failed to look up account: %w", err)
	}
	return user != nil, nil
}
