package model

// User is a shopper account. Passwords are stored as bcrypt hashes.
type User struct {
	Name     string `json:"name" db:"name"`
	Email    string `json:"email" db:"email"`
	Password string `json:"-" db:"password"`
}

// Credentials is the login payload shared by shopper and seller login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the shopper registration payload.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Account types used by the password reset flow to pick the table the
// reset applies to.
const (
	AccountCustomer = "customer"
	AccountSeller   = "seller"
)

// ResetPasswordRequest is the final step of the forgot-password flow.
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
	UserType    string `json:"userType"`
}
