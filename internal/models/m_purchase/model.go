package m_purchase

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the purchases table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a purchase.
// There is no update mutation: purchases are immutable once created.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		AllColumns,
		[]interface{}{
			data.PurchaseID,
			data.CartID,
			data.TotalNumerator,
			data.TotalDenominator,
			data.PaymentMethod,
			data.CreatedAt,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting a purchase.
func (m *Model) DeleteMut(purchaseID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{purchaseID})
}
