package cart

import (
	"testing"

	"mystore/internal/model"
	"mystore/internal/storage"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id int64, price float64) model.Product {
	return model.Product{ID: id, Title: "Product", Price: price}
}

func newTestCart(t *testing.T) (*Cart, storage.Store) {
	t.Helper()
	store := storage.NewMemStore()
	return New(store, zerolog.Nop()), store
}

func TestAdd_IncrementsExistingLine(t *testing.T) {
	c, _ := newTestCart(t)

	c.Add(product(1, 10.00))
	c.Add(product(1, 10.00))
	c.Add(product(2, 5.00))

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestInvariants_NoDuplicateLines_QuantityAtLeastOne(t *testing.T) {
	c, _ := newTestCart(t)

	// An arbitrary op sequence must never produce duplicate ids or a
	// quantity below 1.
	c.Add(product(1, 10.00))
	c.Add(product(2, 5.00))
	c.Add(product(1, 10.00))
	c.SetQuantity(1, 0)
	c.SetQuantity(2, -5)
	c.Remove(3) // no-op
	c.Add(product(2, 5.00))

	seen := map[int64]bool{}
	for _, l := range c.Items() {
		assert.False(t, seen[l.ID], "duplicate line for product %d", l.ID)
		seen[l.ID] = true
		assert.GreaterOrEqual(t, l.Quantity, 1)
	}
}

func TestSetQuantity_ClampsToOne(t *testing.T) {
	c, _ := newTestCart(t)
	c.Add(product(1, 10.00))

	c.SetQuantity(1, 0)
	assert.Equal(t, 1, c.Items()[0].Quantity)

	c.SetQuantity(1, 7)
	assert.Equal(t, 7, c.Items()[0].Quantity)
}

func TestRemove(t *testing.T) {
	c, _ := newTestCart(t)
	c.Add(product(1, 10.00))
	c.Add(product(2, 5.00))

	c.Remove(1)
	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].ID)

	// Removing an absent id is a no-op.
	c.Remove(99)
	assert.Equal(t, 1, c.Len())
}

func TestTotalPrice(t *testing.T) {
	c, _ := newTestCart(t)
	assert.Equal(t, 0.0, c.TotalPrice())

	c.Add(product(1, 10.50))
	c.Add(product(1, 10.50))
	c.Add(product(2, 3.25))
	c.SetQuantity(2, 4)

	assert.InDelta(t, 10.50*2+3.25*4, c.TotalPrice(), 1e-9)
}

func TestPersistence_RoundTrip(t *testing.T) {
	store := storage.NewMemStore()
	logger := zerolog.Nop()

	c := New(store, logger)
	c.Add(product(1, 10.00))
	c.Add(product(1, 10.00))
	c.Add(product(2, 5.00))

	// A new cart over the same store sees the persisted snapshot.
	reloaded := New(store, logger)
	require.Equal(t, 2, reloaded.Len())
	assert.Equal(t, 2, reloaded.Items()[0].Quantity)
	assert.InDelta(t, 25.00, reloaded.TotalPrice(), 1e-9)
}

func TestClear_PersistsEmptyState(t *testing.T) {
	store := storage.NewMemStore()
	logger := zerolog.Nop()

	c := New(store, logger)
	c.Add(product(1, 10.00))
	c.Clear()

	assert.Equal(t, 0, c.Len())

	raw, ok := store.Get(storage.KeyCart)
	require.True(t, ok)
	assert.JSONEq(t, `[]`, raw)

	reloaded := New(store, logger)
	assert.Equal(t, 0, reloaded.Len())
}

func TestLoad_CorruptSnapshotIsEmptyCart(t *testing.T) {
	store := storage.NewMemStore()
	store.Set(storage.KeyCart, "{not json")

	c := New(store, zerolog.Nop())
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0.0, c.TotalPrice())
}

func TestItems_ReturnsCopy(t *testing.T) {
	c, _ := newTestCart(t)
	c.Add(product(1, 10.00))

	items := c.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, c.Items()[0].Quantity)
}
