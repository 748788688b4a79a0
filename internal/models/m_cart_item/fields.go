package m_cart_item

// Field name constants for the cart_items table.
// The table is interleaved in carts; (cart_id, product_id) is the key,
// so one product can never appear twice in the same cart.
const (
	TableName = "cart_items"

	CartID    = "cart_id"
	ProductID = "product_id"
	Quantity  = "quantity"
	AddedAt   = "added_at"
	UpdatedAt = "updated_at"
)

// AllColumns lists every column in read order.
var AllColumns = []string{
	CartID,
	ProductID,
	Quantity,
	AddedAt,
	UpdatedAt,
}
