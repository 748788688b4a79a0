package m_product

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the products table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

func (m *Model) values(data *Data) []interface{} {
	return []interface{}{
		data.ProductID,
		data.Name,
		data.Color,
		data.ProductType,
		data.Fit,
		data.Material,
		data.Size,
		data.PriceNumerator,
		data.PriceDenominator,
		data.CreatedAt,
		data.UpdatedAt,
	}
}

// InsertMut creates a Spanner mutation for inserting a product.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(TableName, AllColumns, m.values(data))
}

// UpdateMut creates a Spanner mutation replacing the row for a product.
func (m *Model) UpdateMut(data *Data) *spanner.Mutation {
	return spanner.Update(TableName, AllColumns, m.values(data))
}

// DeleteMut creates a Spanner mutation for deleting a product.
func (m *Model) DeleteMut(productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID})
}
