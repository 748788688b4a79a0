package m_cart

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the carts table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a cart.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		AllColumns,
		[]interface{}{
			data.CartID,
			data.UserID,
			data.IsOpen,
			data.CreatedAt,
			data.UpdatedAt,
		},
	)
}

// CloseMut creates a Spanner mutation flipping a cart to closed.
func (m *Model) CloseMut(cartID string, now time.Time) *spanner.Mutation {
	return spanner.Update(
		TableName,
		[]string{CartID, IsOpen, UpdatedAt},
		[]interface{}{cartID, false, now},
	)
}

// DeleteMut creates a Spanner mutation for deleting a cart.
// Line items are interleaved with ON DELETE CASCADE, so they go too.
func (m *Model) DeleteMut(cartID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{cartID})
}
