package m_user

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the users table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a user.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		AllColumns,
		[]interface{}{
			data.UserID,
			data.Name,
			data.Email,
			data.PasswordHash,
			data.Admin,
			data.CreatedAt,
			data.UpdatedAt,
		},
	)
}

// UpdateMut creates a Spanner mutation replacing the row for a user.
func (m *Model) UpdateMut(data *Data) *spanner.Mutation {
	return spanner.Update(
		TableName,
		AllColumns,
		[]interface{}{
			data.UserID,
			data.Name,
			data.Email,
			data.PasswordHash,
			data.Admin,
			data.CreatedAt,
			data.UpdatedAt,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting a user.
func (m *Model) DeleteMut(userID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{userID})
}
