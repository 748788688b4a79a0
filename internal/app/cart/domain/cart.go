package domain

import (
	"time"
)

// CartItem is one line item: a (cart, product) pair with a quantity.
// Quantity is always >= 1 while the line exists; a mutation that would
// bring it to zero removes the line instead.
type CartItem struct {
	cartID    string
	productID string
	quantity  int64
}

// NewCartItem builds a line item. Quantity must already be validated.
func NewCartItem(cartID, productID string, quantity int64) *CartItem {
	return &CartItem{cartID: cartID, productID: productID, quantity: quantity}
}

func (ci *CartItem) CartID() string    { return ci.cartID }
func (ci *CartItem) ProductID() string { return ci.productID }
func (ci *CartItem) Quantity() int64   { return ci.quantity }

// Cart is the aggregate root of the cart engine. A cart is either Open
// (editable, purchasable) or Closed (frozen). The only transition is
// Open -> Closed; there is no reopen.
//
// Items keep insertion order, which also fixes the iteration order the
// purchase total is computed in.
type Cart struct {
	id        string
	userID    string
	open      bool
	items     []*CartItem
	createdAt time.Time
	updatedAt time.Time
}

// NewCart creates a new open, empty Cart for the given user.
func NewCart(id, userID string, now time.Time) *Cart {
	return &Cart{
		id:        id,
		userID:    userID,
		open:      true,
		items:     make([]*CartItem, 0),
		createdAt: now,
		updatedAt: now,
	}
}

// ReconstructCart reconstitutes a Cart from the database.
func ReconstructCart(id, userID string, open bool, items []*CartItem, createdAt, updatedAt time.Time) *Cart {
	if items == nil {
		items = make([]*CartItem, 0)
	}
	return &Cart{
		id:        id,
		userID:    userID,
		open:      open,
		items:     items,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Getters
func (c *Cart) ID() string           { return c.id }
func (c *Cart) UserID() string       { return c.userID }
func (c *Cart) IsOpen() bool         { return c.open }
func (c *Cart) Items() []*CartItem   { return c.items }
func (c *Cart) IsEmpty() bool        { return len(c.items) == 0 }
func (c *Cart) CreatedAt() time.Time { return c.createdAt }
func (c *Cart) UpdatedAt() time.Time { return c.updatedAt }

// Item returns the line for productID, or nil if the cart has none.
func (c *Cart) Item(productID string) *CartItem {
	for _, item := range c.items {
		if item.productID == productID {
			return item
		}
	}
	return nil
}

// Close transitions Open -> Closed. Closing an already-closed cart is
// a no-op, so closing is safe to retry. Returns true if the state
// changed.
func (c *Cart) Close(now time.Time) bool {
	if !c.open {
		return false
	}
	c.open = false
	c.updatedAt = now
	return true
}

// AddItem merges quantity into the line for productID, creating the
// line if absent. No duplicate lines ever exist for the same product.
func (c *Cart) AddItem(productID string, quantity int64, now time.Time) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if !c.open {
		return ErrCartClosed
	}

	if item := c.Item(productID); item != nil {
		item.quantity += quantity
	} else {
		c.items = append(c.items, NewCartItem(c.id, productID, quantity))
	}
	c.updatedAt = now
	return nil
}

// RemoveItem decrements the line for productID by quantity, deleting
// the line when it reaches zero. Removing more than the line holds is
// rejected and leaves the line unchanged.
func (c *Cart) RemoveItem(productID string, quantity int64, now time.Time) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if !c.open {
		return ErrCartClosed
	}

	item := c.Item(productID)
	if item == nil {
		return ErrItemNotFound
	}
	if quantity > item.quantity {
		return ErrInvalidQuantity
	}

	item.quantity -= quantity
	if item.quantity <= 0 {
		c.deleteItem(productID)
	}
	c.updatedAt = now
	return nil
}

func (c *Cart) deleteItem(productID string) {
	for i, item := range c.items {
		if item.productID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}
