package client

import (
	"context"
	"fmt"
	"net/http"

	"mystore/internal/model"
)

// sellerLoginResponse carries the identity markers cached after a seller
// signs in.
type sellerLoginResponse struct {
	Message string `json:"message"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Status  string `json:"status"`
}

// loginResponse carries the identity markers cached after a shopper
// signs in.
type loginResponse struct {
	Message string `json:"message"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

// Login authenticates a shopper and returns the account's display name.
// The backend reports invalid credentials with a deliberately generic
// message.
func (c *Client) Login(ctx context.Context, creds model.Credentials) (string, error) {
	var res loginResponse
	if err := c.do(ctx, http.MethodPost, c.url("/login"), creds, &res); err != nil {
		return "", fmt.Errorf("login failed: %w", err)
	}
	return res.Name, nil
}

// Signup registers a new shopper account.
func (c *Client) Signup(ctx context.Context, req model.SignupRequest) error {
	if err := c.do(ctx, http.MethodPost, c.url("/signup"), req, nil); err != nil {
		return fmt.Errorf("signup failed: %w", err)
	}
	return nil
}

// SendOTP requests a verification code be sent to email.
func (c *Client) SendOTP(ctx context.Context, email string) error {
	req := map[string]string{"email": email}
	if err := c.do(ctx, http.MethodPost, c.url("/send-otp"), req, nil); err != nil {
		return fmt.Errorf("failed to send OTP: %w", err)
	}
	return nil
}

// VerifyOTP checks a previously issued verification code.
func (c *Client) VerifyOTP(ctx context.Context, email, otp string) error {
	req := map[string]string{"email": email, "otp": otp}
	if err := c.do(ctx, http.MethodPost, c.url("/verify-otp"), req, nil); err != nil {
		return fmt.Errorf("OTP verification failed: %w", err)
	}
	return nil
}

// SellerLogin authenticates a seller and returns the identity markers the
// dashboard caches locally. Pending and rejected accounts are refused by
// the backend with distinct messages.
func (c *Client) SellerLogin(ctx context.Context, creds model.Credentials) (model.SellerStatus, error) {
	var res sellerLoginResponse
	if err := c.do(ctx, http.MethodPost, c.url("/seller-login"), creds, &res); err != nil {
		return model.SellerStatus{}, fmt.Errorf("seller login failed: %w", err)
	}
	return model.SellerStatus{
		Name:       res.Name,
		Email:      res.Email,
		Status:     res.Status,
		IsApproved: res.Status == model.SellerApproved,
	}, nil
}

// SellerSignup submits a seller application. Accounts start pending until
// an admin approves them.
func (c *Client) SellerSignup(ctx context.Context, req model.SellerSignupRequest) error {
	if err := c.do(ctx, http.MethodPost, c.url("/seller-signup"), req, nil); err != nil {
		return fmt.Errorf("seller signup failed: %w", err)
	}
	return nil
}

// ForgotPasswordSendOTP starts a password reset. userType selects the
// account table: customer or seller.
func (c *Client) ForgotPasswordSendOTP(ctx context.Context, email, userType string) error {
	req := map[string]string{"email": email, "userType": userType}
	if err := c.do(ctx, http.MethodPost, c.url("/forgot-password/send-otp"), req, nil); err != nil {
		return fmt.Errorf("failed to send reset OTP: %w", err)
	}
	return nil
}

// ForgotPasswordVerifyOTP checks the reset code.
func (c *Client) ForgotPasswordVerifyOTP(ctx context.Context, email, otp string) error {
	req := map[string]string{"email": email, "otp": otp}
	if err := c.do(ctx, http.MethodPost, c.url("/forgot-password/verify-otp"), req, nil); err != nil {
		return fmt.Errorf("reset OTP verification failed: %w", err)
	}
	return nil
}

// ResetPassword completes the forgot-password flow.
func (c *Client) ResetPassword(ctx context.Context, req model.ResetPasswordRequest) error {
	if err := c.do(ctx, http.MethodPost, c.url("/forgot-password/reset"), req, nil); err != nil {
		return fmt.Errorf("password reset failed: %w", err)
	}
	return nil
}

// ContactUs submits the contact form.
func (c *Client) ContactUs(ctx context.Context, req model.ContactRequest) error {
	if err := c.do(ctx, http.MethodPost, c.url("/contact-us"), req, nil); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}
