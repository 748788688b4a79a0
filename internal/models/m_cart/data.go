package m_cart

import "time"

// Data represents the database model for the carts table.
type Data struct {
	CartID    string    `spanner:"cart_id"`
	UserID    string    `spanner:"user_id"`
	IsOpen    bool      `spanner:"is_open"`
	CreatedAt time.Time `spanner:"created_at"`
	UpdatedAt time.Time `spanner:"updated_at"`
}
