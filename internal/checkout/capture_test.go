package checkout

import (
	"testing"

	"mystore/internal/cart"
	"mystore/internal/model"
	"mystore/internal/storage"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress() AddressForm {
	return AddressForm{
		FullName:    "Jane Shopper",
		CountryCode: "+1",
		Phone:       "5551234567",
		Pincode:     "12345",
		Address:     "1 Main St",
		City:        "Springfield",
		State:       "IL",
	}
}

func TestValidateAddress_NamesEveryMissingField(t *testing.T) {
	form := AddressForm{FullName: "Jane Shopper"}

	_, err := ValidateAddress(form)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t,
		"Please fill in: Phone Number, Pincode, Address, City, State",
		vErr.Message)
}

func TestValidateAddress_TrimsWhitespace(t *testing.T) {
	form := validAddress()
	form.FullName = "  Jane Shopper  "
	form.City = " Springfield "

	addr, err := ValidateAddress(form)
	require.NoError(t, err)
	assert.Equal(t, "Jane Shopper", addr.FullName)
	assert.Equal(t, "Springfield", addr.City)
}

func TestValidateAddress_WhitespaceOnlyFieldIsMissing(t *testing.T) {
	form := validAddress()
	form.City = "   "

	_, err := ValidateAddress(form)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Please fill in: City")
}

func TestValidateAddress_PhoneBounds(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"five digits accepted", "12345", true},
		{"fifteen digits accepted", "123456789012345", true},
		{"four digits rejected", "123", false},
		{"sixteen digits rejected", "1234567890123456", false},
		{"non-digits rejected", "55512abc67", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validAddress()
			form.Phone = tt.phone

			_, err := ValidateAddress(form)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "valid mobile number")
			}
		})
	}
}

func TestValidateAddress_PincodeBounds(t *testing.T) {
	tests := []struct {
		pincode string
		valid   bool
	}{
		{"12345", true},
		{"123456", true},
		{"1234", false},
		{"1234567", false},
		{"12a45", false},
	}

	for _, tt := range tests {
		t.Run(tt.pincode, func(t *testing.T) {
			form := validAddress()
			form.Pincode = tt.pincode

			_, err := ValidateAddress(form)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "pincode")
			}
		})
	}
}

func TestValidateAddress_CountryCodePrefixedAfterLengthCheck(t *testing.T) {
	form := validAddress()
	form.CountryCode = "+91"
	form.Phone = "12345" // 5 digits: valid without counting the prefix

	addr, err := ValidateAddress(form)
	require.NoError(t, err)
	assert.Equal(t, "+9112345", addr.Phone)
}

func TestValidatePayment(t *testing.T) {
	tests := []struct {
		name    string
		form    PaymentForm
		wantErr string
	}{
		{
			name: "card with all fields",
			form: PaymentForm{
				Method: PaymentCreditCard,
				Card:   CardDetails{CardNumber: "4111111111111111", CardName: "Jane", Expiry: "12/30", CVV: "123"},
			},
		},
		{
			name:    "card names every missing field",
			form:    PaymentForm{Method: PaymentDebitCard, Card: CardDetails{CardName: "Jane"}},
			wantErr: "Please fill in: Card Number, Expiry (MM/YY), CVV",
		},
		{
			name: "upi with id",
			form: PaymentForm{Method: PaymentUPI, UPIID: "jane@bank"},
		},
		{
			name:    "upi without id",
			form:    PaymentForm{Method: PaymentUPI},
			wantErr: "Please enter your UPI ID.",
		},
		{
			name: "cash on delivery requires nothing",
			form: PaymentForm{Method: PaymentCashOnDelivery},
		},
		{
			name:    "unknown method rejected",
			form:    PaymentForm{Method: "Barter"},
			wantErr: "Unknown payment method",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePayment(tt.form)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestCapture_ProducesDetachedSnapshot(t *testing.T) {
	store := storage.NewMemStore()
	c := cart.New(store, zerolog.Nop())
	c.Add(model.Product{ID: 1, Title: "Keyboard", Price: 49.99})
	c.Add(model.Product{ID: 1, Title: "Keyboard", Price: 49.99})
	c.Add(model.Product{ID: 2, Title: "Mouse", Price: 19.99})

	snap, err := Capture(c, validAddress(), PaymentForm{Method: PaymentCashOnDelivery})
	require.NoError(t, err)

	require.Len(t, snap.Items, 2)
	assert.Equal(t, "Keyboard", snap.Items[0].Title)
	assert.Equal(t, 2, snap.Items[0].Quantity)
	assert.InDelta(t, 49.99*2+19.99, snap.TotalPrice, 1e-9)
	assert.Equal(t, PaymentCashOnDelivery, snap.Payment)

	// The snapshot is decoupled from the live cart.
	c.Clear()
	assert.Len(t, snap.Items, 2)
}

func TestCapture_HaltsOnFirstFailure(t *testing.T) {
	store := storage.NewMemStore()
	c := cart.New(store, zerolog.Nop())
	c.Add(model.Product{ID: 1, Price: 10})

	_, err := Capture(c, AddressForm{}, PaymentForm{Method: PaymentUPI})
	require.Error(t, err)

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}
