package domain

import (
	"context"

	catalog "github.com/emre/storefront/internal/catalog/domain"
)

// Line pairs a product snapshot with a quantity. Line identity is the
// product id: a cart never holds two lines for the same product.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Cart is an ordered sequence of lines. Insertion order is preserved on
// add and stable across quantity changes; quantities are always >= 1
// while a line exists.
type Cart struct {
	lines []Line
}

// Add increments the quantity for an existing product line or appends a
// new line with quantity 1
func (c *Cart) Add(product catalog.Product) {
	for i := range c.lines {
		if c.lines[i].Product.ID == product.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{Product: product, Quantity: 1})
}

// Remove deletes the line for the given product id; removing an absent
// id is a no-op
func (c *Cart) Remove(productID string) {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity sets the quantity for the given product id. A quantity of
// zero or less removes the line; an unknown id is a no-op.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.lines = nil
}

// Replace swaps the full line sequence, used when restoring persisted state
func (c *Cart) Replace(lines []Line) {
	c.lines = lines
}

// Lines returns a copy of the line sequence in insertion order
func (c *Cart) Lines() []Line {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// TotalPrice returns the sum of price times quantity over all lines
func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, line := range c.lines {
		total += line.Product.Price * float64(line.Quantity)
	}
	return total
}

// TotalItems returns the sum of quantities over all lines
func (c *Cart) TotalItems() int {
	var total int
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// Repository defines the contract for cart persistence. Load reports an
// absent slot as an empty sequence with no error.
type Repository interface {
	Load(ctx context.Context) ([]Line, error)
	Save(ctx context.Context, lines []Line) error
}
