package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeMissingField      = "MISSING_FIELD"
	ErrCodeInvalidCredential = "INVALID_CREDENTIALS"
	ErrCodeDuplicateEmail    = "DUPLICATE_EMAIL"
	ErrCodeProductNotFound   = "PRODUCT_NOT_FOUND"
	ErrCodeSellerNotFound    = "SELLER_NOT_FOUND"
	ErrCodeNotApproved       = "SELLER_NOT_APPROVED"
	ErrCodeInvalidOTP        = "INVALID_OTP"
	ErrCodeOTPExpired        = "OTP_EXPIRED"
	ErrCodeUnauthorised      = "UNAUTHORIZED"
	ErrCodeForbidden         = "FORBIDDEN"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// DomainError is a business logic failure with a stable code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidCredentials = NewDomainError(ErrCodeInvalidCredential, "Invalid email or password")
	ErrDuplicateEmail     = NewDomainError(ErrCodeDuplicateEmail, "Email already registered")
	ErrProductNotFound    = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrSellerNotFound     = NewDomainError(ErrCodeSellerNotFound, "Seller not found")
	ErrSellerNotApproved  = NewDomainError(ErrCodeNotApproved, "Only approved sellers can manage products")
	ErrSellerPending      = NewDomainError(ErrCodeForbidden, "Your account is pending approval. Please wait for admin to approve your application.")
	ErrSellerRejected     = NewDomainError(ErrCodeForbidden, "Your seller application was rejected. Please contact support.")
	ErrOTPNotFound        = NewDomainError(ErrCodeInvalidOTP, "OTP not found")
	ErrOTPExpired         = NewDomainError(ErrCodeOTPExpired, "OTP expired")
	ErrOTPMismatch        = NewDomainError(ErrCodeInvalidOTP, "Invalid OTP")
)
