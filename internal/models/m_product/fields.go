package m_product

// Field name constants for the products table.
// Prices are stored as exact rationals (numerator/denominator).
const (
	TableName = "products"

	ProductID        = "product_id"
	Name             = "name"
	Color            = "color"
	ProductType      = "product_type"
	Fit              = "fit"
	Material         = "material"
	Size             = "size"
	PriceNumerator   = "price_numerator"
	PriceDenominator = "price_denominator"
	CreatedAt        = "created_at"
	UpdatedAt        = "updated_at"
)

// AllColumns lists every column in read order.
var AllColumns = []string{
	ProductID,
	Name,
	Color,
	ProductType,
	Fit,
	Material,
	Size,
	PriceNumerator,
	PriceDenominator,
	CreatedAt,
	UpdatedAt,
}
