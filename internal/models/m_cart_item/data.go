package m_cart_item

import "time"

// Data represents the database model for the cart_items table.
// Rows are interleaved in their parent cart. AddedAt is set once when
// the line first appears and fixes the line's position in the cart;
// merges move only Quantity and UpdatedAt.
type Data struct {
	CartID    string    `spanner:"cart_id"`
	ProductID string    `spanner:"product_id"`
	Quantity  int64     `spanner:"quantity"`
	AddedAt   time.Time `spanner:"added_at"`
	UpdatedAt time.Time `spanner:"updated_at"`
}
