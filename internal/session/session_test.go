package session

import (
	"testing"

	"mystore/internal/model"
	"mystore/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShopperSession(t *testing.T) {
	s := New(storage.NewMemStore())

	_, ok := s.ShopperEmail()
	assert.False(t, ok)

	s.SetShopper("shopper@example.com", "Shopper")
	email, ok := s.ShopperEmail()
	require.True(t, ok)
	assert.Equal(t, "shopper@example.com", email)

	s.ClearShopper()
	_, ok = s.ShopperEmail()
	assert.False(t, ok)
}

func TestSellerSession(t *testing.T) {
	s := New(storage.NewMemStore())

	_, ok := s.Seller()
	assert.False(t, ok)

	s.SetSeller("seller@example.com", "Seller", model.SellerApproved)
	seller, ok := s.Seller()
	require.True(t, ok)
	assert.Equal(t, "seller@example.com", seller.Email)
	assert.True(t, seller.Approved())

	s.SetSeller("seller@example.com", "Seller", model.SellerPending)
	seller, _ = s.Seller()
	assert.False(t, seller.Approved())

	s.ClearSeller()
	_, ok = s.Seller()
	assert.False(t, ok)
}

func TestSellerDraft_ClearedAfterSubmission(t *testing.T) {
	s := New(storage.NewMemStore())

	form := model.SellerSignupRequest{
		Name:      "Seller",
		Email:     "seller@example.com",
		StoreName: "My Shop",
	}
	s.SaveSellerDraft(form)

	draft, ok := s.SellerDraft()
	require.True(t, ok)
	assert.Equal(t, form, draft)

	// Successful submission clears the autosaved draft.
	s.ClearSellerDraft()
	_, ok = s.SellerDraft()
	assert.False(t, ok)
}

func TestSellerDraft_CorruptValueIgnored(t *testing.T) {
	store := storage.NewMemStore()
	store.Set(storage.KeySellerSignupForm, "{broken")

	s := New(store)
	_, ok := s.SellerDraft()
	assert.False(t, ok)
}
