package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStore(t *testing.T) {
	s := NewMemStore()

	_, ok := s.Get("missing")
	assert.False(t, ok)

	s.Set("cart", `[]`)
	v, ok := s.Get("cart")
	require.True(t, ok)
	assert.Equal(t, `[]`, v)

	s.Set("cart", `[{"id":1}]`)
	v, _ = s.Get("cart")
	assert.Equal(t, `[{"id":1}]`, v)

	s.Remove("cart")
	_, ok = s.Get("cart")
	assert.False(t, ok)

	// Removing an absent key is a no-op
	s.Remove("cart")
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	logger := zerolog.Nop()

	s := NewFileStore(path, logger)
	s.Set(KeyUserEmail, "shopper@example.com")
	s.Set(KeyCart, `[{"id":1,"quantity":2}]`)
	s.Remove(KeyUserEmail)

	// A fresh store over the same file sees the persisted state.
	reopened := NewFileStore(path, logger)

	_, ok := reopened.Get(KeyUserEmail)
	assert.False(t, ok)

	v, ok := reopened.Get(KeyCart)
	require.True(t, ok)
	assert.Equal(t, `[{"id":1,"quantity":2}]`, v)
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.json")

	s := NewFileStore(path, zerolog.Nop())
	_, ok := s.Get(KeyCart)
	assert.False(t, ok)
}

func TestFileStore_CorruptFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s := NewFileStore(path, zerolog.Nop())
	_, ok := s.Get(KeyCart)
	assert.False(t, ok)

	// The store stays usable after a corrupt load.
	s.Set(KeyCart, `[]`)
	v, ok := s.Get(KeyCart)
	require.True(t, ok)
	assert.Equal(t, `[]`, v)
}
