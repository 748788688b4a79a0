package m_user

// Field name constants for the users table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "users"

	UserID       = "user_id"
	Name         = "name"
	Email        = "email"
	PasswordHash = "password_hash"
	Admin        = "admin"
	CreatedAt    = "created_at"
	UpdatedAt    = "updated_at"
)

// AllColumns lists every column in read order.
var AllColumns = []string{
	UserID,
	Name,
	Email,
	PasswordHash,
	Admin,
	CreatedAt,
	UpdatedAt,
}
