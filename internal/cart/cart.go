// Package cart holds the session-scoped cart aggregate. A cart stores product
// snapshots; it is validated against stock at mutation time only and is never
// reconciled against later catalogue changes.
package cart

import (
	"dito-store/internal/model"
	"dito-store/internal/pricing"
)

// Item is a product snapshot plus the chosen quantity.
type Item struct {
	Product  model.Product `json:"product"`
	Quantity int           `json:"quantity"`
}

// Cart is a quantity-indexed subset of the catalogue. Not safe for concurrent
// use; the Manager serialises access.
type Cart struct {
	id    string
	items []Item
}

// New creates an empty cart.
func New(id string) *Cart {
	return &Cart{id: id}
}

// ID returns the cart identifier.
func (c *Cart) ID() string {
	return c.id
}

// AddItem inserts a product with quantity 1, or increments an existing line.
// Returns false when stock is exhausted and the cart is left unchanged.
func (c *Cart) AddItem(p model.Product) bool {
	if p.Stock <= 0 {
		return false
	}

	for i := range c.items {
		if c.items[i].Product.ID == p.ID {
			if c.items[i].Quantity+1 > p.Stock {
				return false
			}
			c.items[i].Quantity++
			// refresh the snapshot so later clamping sees current stock
			c.items[i].Product = p
			return true
		}
	}

	c.items = append(c.items, Item{Product: p, Quantity: 1})
	return true
}

// SetQuantity sets a line's quantity exactly. Quantities below 1 remove the
// line; quantities above the snapshot stock clamp to it.
func (c *Cart) SetQuantity(productID string, qty int) {
	if qty < 1 {
		c.RemoveItem(productID)
		return
	}

	for i := range c.items {
		if c.items[i].Product.ID == productID {
			if qty > c.items[i].Product.Stock {
				qty = c.items[i].Product.Stock
			}
			c.items[i].Quantity = qty
			return
		}
	}
}

// RemoveItem drops a line unconditionally.
func (c *Cart) RemoveItem(productID string) {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Called after checkout completes.
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the cart lines.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.items) == 0
}

// Totals prices the cart with bulk discounts applied.
func (c *Cart) Totals() pricing.CartTotals {
	lines := make([]pricing.Line, len(c.items))
	for i, item := range c.items {
		lines[i] = pricing.Line{
			UnitPrice: item.Product.Price,
			Quantity:  item.Quantity,
			Tiers:     item.Product.BulkDiscounts,
		}
	}
	return pricing.Totals(lines)
}

// OrderItems freezes the cart lines into order line items (original unit
// prices; discounts are netted into the order subtotal, not the line price).
func (c *Cart) OrderItems() []model.OrderItem {
	out := make([]model.OrderItem, len(c.items))
	for i, item := range c.items {
		out[i] = model.OrderItem{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Quantity:  item.Quantity,
			Price:     item.Product.Price,
		}
	}
	return out
}
