// Package checkout implements the cart-to-order pipeline: address and
// payment capture, and the order submission state machine.
package checkout

import (
	"fmt"
	"strings"

	"mystore/internal/cart"
	"mystore/internal/model"
)

// Payment method tags.
const (
	PaymentCreditCard     = "Credit Card"
	PaymentDebitCard      = "Debit Card"
	PaymentUPI            = "UPI"
	PaymentCashOnDelivery = "Cash on Delivery"
)

// AddressForm is the raw user-entered address. Fields are trimmed and
// validated before a checkout may proceed.
type AddressForm struct {
	FullName    string
	CountryCode string // e.g. "+1"; concatenated onto the phone, not counted in its length check
	Phone       string
	Pincode     string
	Address     string
	City        string
	State       string
}

// CardDetails are the card payment fields. Presence only; no gateway
// integration.
type CardDetails struct {
	CardNumber string
	CardName   string
	Expiry     string
	CVV        string
}

// PaymentForm is the raw payment capture input.
type PaymentForm struct {
	Method string
	Card   CardDetails
	UPIID  string
}

// ValidationError reports one failed capture step with a user-facing
// message enumerating every offending field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Snapshot is the immutable result of a successful capture: cart items
// copied by value, the computed total, the validated address and the chosen
// payment method. It carries no reference back into the cart.
type Snapshot struct {
	Items      []model.OrderItem
	TotalPrice float64
	Address    model.AddressInfo
	Payment    string
}

// ValidateAddress checks the address form. It returns the validated
// address with the country code folded into the phone number, or a
// ValidationError naming every missing field (or the first invalid one).
func ValidateAddress(form AddressForm) (model.AddressInfo, error) {
	fullName := strings.TrimSpace(form.FullName)
	phone := strings.TrimSpace(form.Phone)
	pincode := strings.TrimSpace(form.Pincode)
	address := strings.TrimSpace(form.Address)
	city := strings.TrimSpace(form.City)
	state := strings.TrimSpace(form.State)

	var missing []string
	if fullName == "" {
		missing = append(missing, "Full Name")
	}
	if phone == "" {
		missing = append(missing, "Phone Number")
	}
	if pincode == "" {
		missing = append(missing, "Pincode")
	}
	if address == "" {
		missing = append(missing, "Address")
	}
	if city == "" {
		missing = append(missing, "City")
	}
	if state == "" {
		missing = append(missing, "State")
	}

	if len(missing) > 0 {
		return model.AddressInfo{}, &ValidationError{
			Message: fmt.Sprintf("Please fill in: %s", strings.Join(missing, ", ")),
		}
	}

	if !digitsOnly(phone) || len(phone) < 5 || len(phone) > 15 {
		return model.AddressInfo{}, &ValidationError{
			Message: "Please enter a valid mobile number (5-15 digits).",
		}
	}

	if !digitsOnly(pincode) || (len(pincode) != 5 && len(pincode) != 6) {
		return model.AddressInfo{}, &ValidationError{
			Message: "Please enter a valid 5 or 6-digit pincode.",
		}
	}

	return model.AddressInfo{
		FullName: fullName,
		Phone:    form.CountryCode + phone,
		Pincode:  pincode,
		Address:  address,
		City:     city,
		State:    state,
	}, nil
}

// ValidatePayment checks the payment-method-specific required fields.
// Cash on delivery requires nothing extra.
func ValidatePayment(form PaymentForm) error {
	switch form.Method {
	case PaymentCreditCard, PaymentDebitCard:
		var missing []string
		if form.Card.CardNumber == "" {
			missing = append(missing, "Card Number")
		}
		if form.Card.CardName == "" {
			missing = append(missing, "Name on Card")
		}
		if form.Card.Expiry == "" {
			missing = append(missing, "Expiry (MM/YY)")
		}
		if form.Card.CVV == "" {
			missing = append(missing, "CVV")
		}
		if len(missing) > 0 {
			return &ValidationError{
				Message: fmt.Sprintf("Please fill in: %s", strings.Join(missing, ", ")),
			}
		}
	case PaymentUPI:
		if strings.TrimSpace(form.UPIID) == "" {
			return &ValidationError{Message: "Please enter your UPI ID."}
		}
	case PaymentCashOnDelivery:
		// nothing extra
	default:
		return &ValidationError{Message: fmt.Sprintf("Unknown payment method: %s", form.Method)}
	}

	return nil
}

// Capture runs both validation steps over the current cart and, on
// success, produces the immutable snapshot handed to the submission
// pipeline. It never partially advances: any failure leaves nothing
// captured.
func Capture(c *cart.Cart, address AddressForm, payment PaymentForm) (Snapshot, error) {
	validated, err := ValidateAddress(address)
	if err != nil {
		return Snapshot{}, err
	}

	if err := ValidatePayment(payment); err != nil {
		return Snapshot{}, err
	}

	lines := c.Items()
	items := make([]model.OrderItem, len(lines))
	for i, l := range lines {
		items[i] = model.OrderItem{
			Title:    l.Title,
			Price:    l.Price,
			Quantity: l.Quantity,
		}
	}

	return Snapshot{
		Items:      items,
		TotalPrice: c.TotalPrice(),
		Address:    validated,
		Payment:    payment.Method,
	}, nil
}

func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
