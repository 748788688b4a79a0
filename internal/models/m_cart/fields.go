package m_cart

// Field name constants for the carts table.
const (
	TableName = "carts"

	CartID    = "cart_id"
	UserID    = "user_id"
	IsOpen    = "is_open"
	CreatedAt = "created_at"
	UpdatedAt = "updated_at"
)

// AllColumns lists every column in read order.
var AllColumns = []string{
	CartID,
	UserID,
	IsOpen,
	CreatedAt,
	UpdatedAt,
}
