package m_product

import "time"

// Data represents the database model for the products table.
// Prices are stored as exact rationals (numerator/denominator).
type Data struct {
	ProductID        string    `spanner:"product_id"`
	Name             string    `spanner:"name"`
	Color            string    `spanner:"color"`
	ProductType      string    `spanner:"product_type"`
	Fit              string    `spanner:"fit"`
	Material         string    `spanner:"material"`
	Size             string    `spanner:"size"`
	PriceNumerator   int64     `spanner:"price_numerator"`
	PriceDenominator int64     `spanner:"price_denominator"`
	CreatedAt        time.Time `spanner:"created_at"`
	UpdatedAt        time.Time `spanner:"updated_at"`
}
