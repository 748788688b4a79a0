package m_user

import "time"

// Data represents the database model for the users table.
type Data struct {
	UserID       string    `spanner:"user_id"`
	Name         string    `spanner:"name"`
	Email        string    `spanner:"email"`
	PasswordHash string    `spanner:"password_hash"`
	Admin        bool      `spanner:"admin"`
	CreatedAt    time.Time `spanner:"created_at"`
	UpdatedAt    time.Time `spanner:"updated_at"`
}
