package entity

import (
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrInvalidQuantity is returned when a cart mutation carries a non-positive quantity.
var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// CartItem is one cart line: a product reference and how many of it.
type CartItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// Cart is an ordered list of items, unique by product.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Add increments the quantity of an existing line or appends a new one.
func (c *Cart) Add(productID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return errors.WithStack(ErrInvalidQuantity)
	}

	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity += quantity

			return nil
		}
	}

	c.Items = append(c.Items, CartItem{ProductID: productID, Quantity: quantity})

	return nil
}

// Remove drops the line for productID. It reports whether a line was removed.
func (c *Cart) Remove(productID uuid.UUID) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)

			return true
		}
	}

	return false
}

// Deduct lowers the quantity held for productID by quantity, dropping the line
// when nothing is left. Absent products are ignored.
func (c *Cart) Deduct(productID uuid.UUID, quantity int) {
	for i := range c.Items {
		if c.Items[i].ProductID != productID {
			continue
		}
		c.Items[i].Quantity -= quantity
		if c.Items[i].Quantity <= 0 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		}

		return
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// QuantityOf returns the quantity held for productID, zero when absent.
func (c *Cart) QuantityOf(productID uuid.UUID) int {
	for _, item := range c.Items {
		if item.ProductID == productID {
			return item.Quantity
		}
	}

	return 0
}

// ProductIDs returns the product ids in cart order.
func (c *Cart) ProductIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(c.Items))
	for _, item := range c.Items {
		ids = append(ids, item.ProductID)
	}

	return ids
}
