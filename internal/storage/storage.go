// Package storage provides the local key-value store backing storefront
// state (cart snapshots, session markers, form drafts). It is injected
// everywhere it is needed so tests can substitute an in-memory store.
package storage

// Well-known storage keys.
const (
	KeyCart             = "cart"
	KeyUserEmail        = "userEmail"
	KeyUserName         = "userName"
	KeySellerEmail      = "sellerEmail"
	KeySellerName       = "sellerName"
	KeySellerStatus     = "sellerStatus"
	KeySellerSignupForm = "sellerSignupForm"
)

// Store is a string key-value store. A missing key is never an error; Get
// reports presence via its second return value.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool)

	// Set stores value under key, replacing any previous value.
	Set(key, value string)

	// Remove deletes key. Removing an absent key is a no-op.
	Remove(key string)
}

// MemStore is an in-memory Store used in tests and for ephemeral sessions.
type MemStore struct {
	values map[string]string
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string]string)}
}

// Get returns the value for key and whether it was present.
func (m *MemStore) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Set stores value under key.
func (m *MemStore) Set(key, value string) {
	m.values[key] = value
}

// Remove deletes key.
func (m *MemStore) Remove(key string) {
	delete(m.values, key)
}
