package m_purchase

import "time"

// Data represents the database model for the purchases table.
// Totals are stored as exact rationals (numerator/denominator).
type Data struct {
	PurchaseID       string    `spanner:"purchase_id"`
	CartID           string    `spanner:"cart_id"`
	TotalNumerator   int64     `spanner:"total_numerator"`
	TotalDenominator int64     `spanner:"total_denominator"`
	PaymentMethod    string    `spanner:"payment_method"`
	CreatedAt        time.Time `spanner:"created_at"`
}
