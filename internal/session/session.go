// Package session tracks the signed-in shopper and seller as plain markers
// in local storage, the way the storefront treats identity: no tokens, no
// refresh protocol, absence simply means unauthenticated.
package session

import (
	"encoding/json"

	"mystore/internal/model"
	"mystore/internal/storage"
)

// SellerSession is the locally cached seller identity and approval marker.
type SellerSession struct {
	Email  string
	Name   string
	Status string
}

// Approved reports whether the cached status marker is "approved". The
// dashboard still re-validates this against the backend once per load.
func (s SellerSession) Approved() bool {
	return s.Status == model.SellerApproved
}

// Session reads and writes identity markers over an injected store.
type Session struct {
	store storage.Store
}

// New creates a session view over store.
func New(store storage.Store) *Session {
	return &Session{store: store}
}

// ShopperEmail returns the signed-in shopper's email, if any.
func (s *Session) ShopperEmail() (string, bool) {
	return s.store.Get(storage.KeyUserEmail)
}

// SetShopper records a shopper sign-in.
func (s *Session) SetShopper(email, name string) {
	s.store.Set(storage.KeyUserEmail, email)
	s.store.Set(storage.KeyUserName, name)
}

// ClearShopper signs the shopper out.
func (s *Session) ClearShopper() {
	s.store.Remove(storage.KeyUserEmail)
	s.store.Remove(storage.KeyUserName)
}

// Seller returns the cached seller session, if one is present.
func (s *Session) Seller() (SellerSession, bool) {
	email, ok := s.store.Get(storage.KeySellerEmail)
	if !ok || email == "" {
		return SellerSession{}, false
	}
	name, _ := s.store.Get(storage.KeySellerName)
	status, _ := s.store.Get(storage.KeySellerStatus)
	return SellerSession{Email: email, Name: name, Status: status}, true
}

// SetSeller records a seller sign-in.
func (s *Session) SetSeller(email, name, status string) {
	s.store.Set(storage.KeySellerEmail, email)
	s.store.Set(storage.KeySellerName, name)
	s.store.Set(storage.KeySellerStatus, status)
}

// ClearSeller drops the seller identity, forcing a fresh login.
func (s *Session) ClearSeller() {
	s.store.Remove(storage.KeySellerEmail)
	s.store.Remove(storage.KeySellerName)
	s.store.Remove(storage.KeySellerStatus)
}

// SaveSellerDraft autosaves an in-progress seller application form.
func (s *Session) SaveSellerDraft(form model.SellerSignupRequest) {
	data, err := json.Marshal(form)
	if err != nil {
		return
	}
	s.store.Set(storage.KeySellerSignupForm, string(data))
}

// SellerDraft returns the saved application draft, if one parses.
func (s *Session) SellerDraft() (model.SellerSignupRequest, bool) {
	raw, ok := s.store.Get(storage.KeySellerSignupForm)
	if !ok {
		return model.SellerSignupRequest{}, false
	}

	var form model.SellerSignupRequest
	if err := json.Unmarshal([]byte(raw), &form); err != nil {
		return model.SellerSignupRequest{}, false
	}
	return form, true
}

// ClearSellerDraft removes the autosaved application form. Called after a
// successful submission.
func (s *Session) ClearSellerDraft() {
	s.store.Remove(storage.KeySellerSignupForm)
}
