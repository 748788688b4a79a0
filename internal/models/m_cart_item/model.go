package m_cart_item

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the cart_items table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for a brand-new line item.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		AllColumns,
		[]interface{}{
			data.CartID,
			data.ProductID,
			data.Quantity,
			data.AddedAt,
			data.UpdatedAt,
		},
	)
}

// UpdateQuantityMut creates a Spanner mutation rewriting an existing
// line's quantity. AddedAt is untouched so the line keeps its position.
func (m *Model) UpdateQuantityMut(cartID, productID string, quantity int64, now time.Time) *spanner.Mutation {
	return spanner.Update(
		TableName,
		[]string{CartID, ProductID, Quantity, UpdatedAt},
		[]interface{}{cartID, productID, quantity, now},
	)
}

// DeleteMut creates a Spanner mutation removing one line item.
func (m *Model) DeleteMut(cartID, productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{cartID, productID})
}
