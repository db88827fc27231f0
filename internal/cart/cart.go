// Package cart implements the shopper's cart: a list of product lines with
// quantities, persisted as a whole snapshot to local storage after every
// mutation.
package cart

import (
	"encoding/json"

	"mystore/internal/model"
	"mystore/internal/storage"

	"github.com/rs/zerolog"
)

// Line is one product plus its requested quantity.
type Line struct {
	model.Product
	Quantity int `json:"quantity"`
}

// Subtotal is the line's price contribution.
func (l Line) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// Cart holds the active shopper's lines. Invariants: at most one line per
// product id, every quantity >= 1.
type Cart struct {
	store  storage.Store
	lines  []Line
	logger zerolog.Logger
}

// New loads the cart from store. A missing or unparseable snapshot is an
// empty cart, never an error.
func New(store storage.Store, logger zerolog.Logger) *Cart {
	c := &Cart{
		store:  store,
		logger: logger.With().Str("component", "cart").Logger(),
	}

	raw, ok := store.Get(storage.KeyCart)
	if !ok {
		return c
	}

	if err := json.Unmarshal([]byte(raw), &c.lines); err != nil {
		c.logger.Warn().Err(err).Msg("stored cart unparseable, starting empty")
		c.lines = nil
	}

	return c
}

// Add inserts p with quantity 1, or increments the existing line's quantity.
func (c *Cart) Add(p model.Product) {
	for i := range c.lines {
		if c.lines[i].ID == p.ID {
			c.lines[i].Quantity++
			c.persist()
			return
		}
	}

	c.lines = append(c.lines, Line{Product: p, Quantity: 1})
	c.persist()
}

// Remove deletes the line for productID, if present.
func (c *Cart) Remove(productID int64) {
	for i := range c.lines {
		if c.lines[i].ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.persist()
			return
		}
	}
}

// SetQuantity updates the matching line's quantity, clamped to a minimum
// of 1. Unknown product ids are ignored.
func (c *Cart) SetQuantity(productID int64, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	for i := range c.lines {
		if c.lines[i].ID == productID {
			c.lines[i].Quantity = quantity
			c.persist()
			return
		}
	}
}

// Clear empties the cart and persists the empty state.
func (c *Cart) Clear() {
	c.lines = nil
	c.persist()
}

// Items returns a copy of the current lines.
func (c *Cart) Items() []Line {
	items := make([]Line, len(c.lines))
	copy(items, c.lines)
	return items
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// TotalPrice is the sum of unit price times quantity over all lines,
// recomputed on every call.
func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

// persist writes the whole snapshot, overwriting the previous one.
func (c *Cart) persist() {
	lines := c.lines
	if lines == nil {
		lines = []Line{}
	}

	data, err := json.Marshal(lines)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to encode cart snapshot")
		return
	}

	c.store.Set(storage.KeyCart, string(data))
}
