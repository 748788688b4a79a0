package m_purchase

// Field name constants for the purchases table.
// A unique index on cart_id enforces one purchase per cart at the
// storage layer as a backstop to the engine's in-transaction check.
const (
	TableName = "purchases"

	PurchaseID       = "purchase_id"
	CartID           = "cart_id"
	TotalNumerator   = "total_numerator"
	TotalDenominator = "total_denominator"
	PaymentMethod    = "payment_method"
	CreatedAt        = "created_at"
)

// AllColumns lists every column in read order.
var AllColumns = []string{
	PurchaseID,
	CartID,
	TotalNumerator,
	TotalDenominator,
	PaymentMethod,
	CreatedAt,
}
